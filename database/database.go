package database

import (
	"fmt"

	"bfx/config"
	"bfx/logger"
	"bfx/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Dialector escolhe o driver conforme database.driver (mysql ou postgres)
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=UTC",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
			sslMode,
		)
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("driver de banco não suportado: %s", cfg.Driver)
}

// Init abre a conexão, migra as tabelas e cria o administrador inicial
func Init(cfg *config.Config) error {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return err
	}

	level := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		level = gormlogger.Info
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return fmt.Errorf("falha ao conectar ao banco: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := Migrate(DB); err != nil {
		return err
	}

	if err := SeedAdmin(DB); err != nil {
		return fmt.Errorf("falha ao criar administrador inicial: %w", err)
	}

	logger.L().Info("banco de dados inicializado", zap.String("driver", cfg.Database.Driver))
	return nil
}

// Migrate cria/atualiza as tabelas
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.PartnerCompany{},
		&models.Sale{},
		&models.Expense{},
		&models.AIProvider{},
		&models.AIChatMessage{},
		&models.AuditLog{},
	)
}

// SeedAdmin cria admin/admin quando não há nenhum administrador
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Username:    "admin",
		DisplayName: "Administrador",
		Role:        models.RoleAdmin,
		Status:      models.UserStatusActive,
	}
	if err := admin.SetPassword("admin"); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.L().Warn("administrador inicial criado com senha padrão, altere-a", zap.String("username", admin.Username))
	return nil
}

// GetDB retorna a conexão global
func GetDB() *gorm.DB {
	return DB
}
