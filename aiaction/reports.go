package aiaction

import (
	"context"
	"errors"
	"fmt"

	"bfx/finance"
	"bfx/service"
)

type dreParams struct {
	Mes string `json:"mes"`
}

func monthDRE(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p dreParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Mes != "" {
		if _, err := finance.ParseMonth(p.Mes); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
	}
	return d.finance.DRE(ctx, p.Mes)
}

type customerLimitParams struct {
	ClienteID uint `json:"clienteId"`
}

func customerLimit(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p customerLimitParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.ClienteID == 0 {
		return nil, fmt.Errorf("%w: clienteId é obrigatório", ErrInvalidParams)
	}
	l, err := d.finance.Limit(ctx, p.ClienteID)
	if errors.Is(err, service.ErrCustomerNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return l, err
}
