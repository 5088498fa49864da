package queries

import (
	"context"
	"slices"
	"strings"
	"time"

	"glamping-booking/internal/infra"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/shared"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrReservationNotFound = errs.Mark(errs.New("Reservation not found"), errs.ErrNotFound)

const (
	defaultListLimit = 50
	maxListLimit     = 500
	exportLimit      = 10000
)

// InvoiceRenderer produces the PDF invoice of a reservation.
type InvoiceRenderer interface {
	Render(view *ReservationView) ([]byte, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter shared.ReservationFilter) ([]*ReservationListItem, error)
	ExportCSV(ctx context.Context, filter shared.ReservationFilter) ([]byte, error)
	Invoice(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type reservationQueriesImpl struct {
	uow      shared.UnitOfWork
	invoices InvoiceRenderer
}

func NewReservationQueries(uow shared.UnitOfWork, invoices InvoiceRenderer) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, invoices: invoices}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.uow.Reads().Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewReservationView(r), nil
}

func (q *reservationQueriesImpl) views(ctx context.Context, filter shared.ReservationFilter) ([]*ReservationView, error) {
	rows, err := q.uow.Reads().Reservations().List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]*ReservationView, 0, len(rows))
	for _, r := range rows {
		views = append(views, NewReservationView(r))
	}
	return views, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter shared.ReservationFilter) ([]*ReservationListItem, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	filter.Limit = min(filter.Limit, maxListLimit)
	filter.Offset = max(filter.Offset, 0)

	views, err := q.views(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*ReservationListItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation list")
	}
	return items, nil
}

func (q *reservationQueriesImpl) ExportCSV(ctx context.Context, filter shared.ReservationFilter) ([]byte, error) {
	filter.Limit = exportLimit
	filter.Offset = 0

	views, err := q.views(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]*ReservationCSVRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, &ReservationCSVRow{
			ID:                 v.ID.String(),
			Product:            v.Product,
			Status:             v.Status,
			Name:               v.Name,
			Email:              v.Email,
			Phone:              v.Phone,
			Date:               v.Date,
			Location:           v.Location,
			Units:              v.Units,
			GroupSize:          v.GroupSize,
			ArrivalSlot:        v.ArrivalSlot,
			AddOns:             strings.Join(append(slices.Clone(v.AddOns), v.CustomAddOnIDs...), ";"),
			Subtotal:           v.Subtotal.String(),
			VAT:                v.VAT.String(),
			Total:              v.Total.String(),
			SpecialPricingName: v.SpecialPricingName,
			IsPaid:             v.IsPaid,
			CreatedAt:          v.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode reservations csv")
	}
	return out, nil
}

func (q *reservationQueriesImpl) Invoice(ctx context.Context, id uuid.UUID) ([]byte, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pdf, err := q.invoices.Render(view)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render invoice")
	}
	return pdf, nil
}
