package services

import (
	"context"
	"errors"
	"math/rand"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// ErrSerialExhausted is returned when the allocator cannot find a free serial
// number within its retry budget.
var ErrSerialExhausted = errors.New("could not allocate a unique serial number")

// serialAllocAttempts bounds the collision-retry loop of the allocator.
const serialAllocAttempts = 10

// ProductReader defines read-only operations for products.
type ProductReader interface {
	List(ctx context.Context) ([]models.ProductDB, error)
	Exists(ctx context.Context, productSN string) (bool, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	Save(ctx context.Context, p models.ProductDB) error
	Update(ctx context.Context, productSN string, p models.ProductDB) error
	DeleteCascade(ctx context.Context, productSN string) error
}

// ProductService handles the product catalog.
type ProductService struct {
	reader ProductReader
	writer ProductWriter
}

// NewProductService creates a new ProductService instance.
func NewProductService(reader ProductReader, writer ProductWriter) *ProductService {
	return &ProductService{
		reader: reader,
		writer: writer,
	}
}

// List returns all products in store order.
func (svc *ProductService) List(ctx context.Context) ([]models.ProductDB, error) {
	products, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "err", err)
		return nil, err
	}
	return products, nil
}

// Create stores a new product. A caller-supplied serial number is used
// verbatim without format validation; when it is empty the service allocates
// one, retrying on collision. The purchase date is normalized to the fixed
// local-time text form before storage.
func (svc *ProductService) Create(ctx context.Context, p models.ProductDB) (models.ProductDB, error) {
	if p.ProductSN == "" {
		sn, err := svc.allocateSerial(ctx)
		if err != nil {
			return models.ProductDB{}, err
		}
		p.ProductSN = sn
	}

	p.PurchaseDate = NormalizeDateTime(p.PurchaseDate)

	if err := svc.writer.Save(ctx, p); err != nil {
		logger.Log.Errorw("failed to save product", "product_sn", p.ProductSN, "err", err)
		return models.ProductDB{}, err
	}
	return p, nil
}

// Update replaces all mutable fields of the addressed product. An unknown
// serial number matches zero rows and is still reported as success.
func (svc *ProductService) Update(ctx context.Context, productSN string, p models.ProductDB) error {
	p.PurchaseDate = NormalizeDateTime(p.PurchaseDate)

	if err := svc.writer.Update(ctx, productSN, p); err != nil {
		logger.Log.Errorw("failed to update product", "product_sn", productSN, "err", err)
		return err
	}
	return nil
}

// Delete removes the product together with every rental referencing it.
func (svc *ProductService) Delete(ctx context.Context, productSN string) error {
	if err := svc.writer.DeleteCascade(ctx, productSN); err != nil {
		logger.Log.Errorw("failed to delete product", "product_sn", productSN, "err", err)
		return err
	}
	return nil
}

// allocateSerial picks serial numbers of the form QRSTU482 (5 uppercase
// letters, 3 digits) until one is free.
func (svc *ProductService) allocateSerial(ctx context.Context) (string, error) {
	for i := 0; i < serialAllocAttempts; i++ {
		sn := randomSerial()

		exists, err := svc.reader.Exists(ctx, sn)
		if err != nil {
			logger.Log.Errorw("failed to check serial number", "product_sn", sn, "err", err)
			return "", err
		}
		if !exists {
			return sn, nil
		}
	}
	return "", ErrSerialExhausted
}

func randomSerial() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	const digits = "0123456789"

	buf := make([]byte, 8)
	for i := 0; i < 5; i++ {
		buf[i] = letters[rand.Intn(len(letters))]
	}
	for i := 5; i < 8; i++ {
		buf[i] = digits[rand.Intn(len(digits))]
	}
	return string(buf)
}
