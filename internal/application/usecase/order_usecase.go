package usecase

import (
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/domain"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReceiptPDFGenerator puerto para la representación PDF de una orden
// (implementado en infrastructure/pdf con Maroto).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(order *entity.Order) ([]byte, error)
}

// OrderUseCase vistas back-office sobre órdenes: listado, detalle, recibo y
// métricas del dashboard admin.
type OrderUseCase struct {
	orders  repository.OrderRepository
	users   repository.UserRepository
	catalog repository.CatalogRepository
	pdf     ReceiptPDFGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, catalog repository.CatalogRepository, pdf ReceiptPDFGenerator) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, catalog: catalog, pdf: pdf}
}

// List todas las órdenes guardadas (escaneo por prefijo, sin índice).
func (uc *OrderUseCase) List() ([]*entity.Order, error) {
	return uc.orders.List()
}

// GetByID devuelve la orden o ErrOrderNotFound.
func (uc *OrderUseCase) GetByID(orderID string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// Receipt genera el PDF del recibo de la orden.
func (uc *OrderUseCase) Receipt(orderID string) ([]byte, error) {
	order, err := uc.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReceiptPDF(order)
}

// Overview métricas del dashboard admin. Revenue suma los totales de las
// órdenes cobradas o confirmadas (paid + confirmed).
func (uc *OrderUseCase) Overview() (*dto.OverviewResponse, error) {
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status == entity.OrderPaid || o.Status == entity.OrderConfirmed {
			revenue = revenue.Add(o.Total)
		}
	}
	userCount, err := uc.users.Count()
	if err != nil {
		return nil, err
	}
	return &dto.OverviewResponse{
		Products: len(uc.catalog.List()),
		Orders:   len(orders),
		Users:    userCount,
		Revenue:  revenue,
	}, nil
}
