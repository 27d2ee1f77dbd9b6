package api

import (
	"errors"
	"strings"

	"bfx/database"
	"bfx/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler produtos e empresas conveniadas
type CatalogHandler struct{}

// NewCatalogHandler cria o handler de cadastros auxiliares
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ProductRequest cadastro/alteração de produto
type ProductRequest struct {
	Name         string  `json:"name" binding:"required,max=150" example:"Smartphone X"`
	Brand        string  `json:"brand" binding:"max=100"`
	NCM          string  `json:"ncm" binding:"max=10"`
	StandardCost float64 `json:"standard_cost" binding:"gte=0"`
	SalePrice    float64 `json:"sale_price" binding:"gte=0"`
}

// PartnerRequest cadastro de empresa conveniada
type PartnerRequest struct {
	Name      string `json:"name" binding:"required,max=150"`
	HRContact string `json:"hr_contact" binding:"max=100"`
	HRPhone   string `json:"hr_phone" binding:"max=20"`
	HREmail   string `json:"hr_email" binding:"omitempty,email,max=100"`
}

func (r ProductRequest) apply(p *models.Product) {
	p.Name = strings.TrimSpace(r.Name)
	p.Brand = strings.TrimSpace(r.Brand)
	p.NCM = r.NCM
	p.StandardCost = r.StandardCost
	p.SalePrice = r.SalePrice
}

// ListProducts produtos com busca por nome
// @Summary Listar produtos
// @Tags Cadastros
// @Produce json
// @Security BearerAuth
// @Param q query string false "Busca por nome"
// @Success 200 {object} Response{data=[]models.Product}
// @Router /api/produtos [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	query := database.DB.Model(&models.Product{})
	if q := c.Query("q"); strings.TrimSpace(q) != "" {
		query = query.Where("LOWER(name) LIKE ?", likeSearch(q))
	}
	var list []models.Product
	if err := query.Order("name ASC").Limit(200).Find(&list).Error; err != nil {
		serverError(c, err, "Falha ao listar produtos")
		return
	}
	Success(c, list)
}

// CreateProduct cadastra produto
// @Summary Cadastrar produto
// @Tags Cadastros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Produto"
// @Success 200 {object} Response{data=models.Product}
// @Router /api/produtos [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	var p models.Product
	req.apply(&p)
	if err := database.DB.Create(&p).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar produto")
		return
	}
	SuccessWithMessage(c, "Produto cadastrado", p)
}

// UpdateProduct altera produto
// @Summary Alterar produto
// @Tags Cadastros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Param request body ProductRequest true "Produto"
// @Success 200 {object} Response{data=models.Product}
// @Failure 404 {object} Response
// @Router /api/produtos/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	var p models.Product
	err := database.DB.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Produto não encontrado")
		return
	}
	if err != nil {
		serverError(c, err, "Falha ao buscar produto")
		return
	}
	req.apply(&p)
	if err := database.DB.Save(&p).Error; err != nil {
		serverError(c, err, "Falha ao alterar produto")
		return
	}
	SuccessWithMessage(c, "Produto alterado", p)
}

// ListPartners empresas conveniadas
// @Summary Listar empresas conveniadas
// @Tags Cadastros
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.PartnerCompany}
// @Router /api/empresas [get]
func (h *CatalogHandler) ListPartners(c *gin.Context) {
	var list []models.PartnerCompany
	if err := database.DB.Order("name ASC").Find(&list).Error; err != nil {
		serverError(c, err, "Falha ao listar empresas")
		return
	}
	Success(c, list)
}

// CreatePartner cadastra empresa conveniada
// @Summary Cadastrar empresa conveniada
// @Tags Cadastros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PartnerRequest true "Empresa"
// @Success 200 {object} Response{data=models.PartnerCompany}
// @Router /api/empresas [post]
func (h *CatalogHandler) CreatePartner(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	p := models.PartnerCompany{
		Name:      strings.TrimSpace(req.Name),
		HRContact: req.HRContact,
		HRPhone:   req.HRPhone,
		HREmail:   req.HREmail,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar empresa")
		return
	}
	SuccessWithMessage(c, "Empresa cadastrada", p)
}
