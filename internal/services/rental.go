package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// RentalReader defines read-only operations for rentals.
type RentalReader interface {
	ListByProduct(ctx context.Context, productSN string) ([]models.RentalDB, error)
}

// RentalWriter defines write operations for rentals.
type RentalWriter interface {
	Save(ctx context.Context, rental models.RentalDB) error
	Update(ctx context.Context, productSN, startDate string, rental models.RentalDB) error
	Delete(ctx context.Context, productSN, startDate string) error
}

// RentalService handles the rental ledger.
type RentalService struct {
	reader RentalReader
	writer RentalWriter
}

// NewRentalService creates a new RentalService instance.
func NewRentalService(reader RentalReader, writer RentalWriter) *RentalService {
	return &RentalService{
		reader: reader,
		writer: writer,
	}
}

// ListByProduct returns all rentals for the given serial number.
func (svc *RentalService) ListByProduct(ctx context.Context, productSN string) ([]models.RentalDB, error) {
	rentals, err := svc.reader.ListByProduct(ctx, productSN)
	if err != nil {
		logger.Log.Errorw("failed to list rentals", "product_sn", productSN, "err", err)
		return nil, err
	}
	return rentals, nil
}

// Create stores a new rental with a freshly assigned surrogate ID. Start and
// end dates are normalized to the fixed local-time text form; the normalized
// start date becomes half of the record's addressing key.
func (svc *RentalService) Create(ctx context.Context, rental models.RentalDB) (models.RentalDB, error) {
	rental.RentalID = uuid.New()
	rental.StartDate = NormalizeDateTime(rental.StartDate)
	rental.EndDate = NormalizeOptionalDateTime(rental.EndDate)

	if err := svc.writer.Save(ctx, rental); err != nil {
		logger.Log.Errorw("failed to save rental",
			"product_sn", rental.ProductSN, "start_date", rental.StartDate, "err", err)
		return models.RentalDB{}, err
	}
	return rental, nil
}

// Update mutates the rental addressed by (productSN, startDate). The key
// always comes from the caller-supplied identifier, never from the body, and
// only transaction type, end date, quantity and description change. An
// unmatched key updates zero rows and is still reported as success.
func (svc *RentalService) Update(ctx context.Context, productSN, startDate string, rental models.RentalDB) error {
	key := NormalizeDateTime(startDate)
	rental.EndDate = NormalizeOptionalDateTime(rental.EndDate)

	if err := svc.writer.Update(ctx, productSN, key, rental); err != nil {
		logger.Log.Errorw("failed to update rental",
			"product_sn", productSN, "start_date", key, "err", err)
		return err
	}
	return nil
}

// Delete removes the rental addressed by (productSN, startDate), if any.
func (svc *RentalService) Delete(ctx context.Context, productSN, startDate string) error {
	key := NormalizeDateTime(startDate)

	if err := svc.writer.Delete(ctx, productSN, key); err != nil {
		logger.Log.Errorw("failed to delete rental",
			"product_sn", productSN, "start_date", key, "err", err)
		return err
	}
	return nil
}
