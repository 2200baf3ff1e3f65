package queries

import (
	"context"

	"dentallab/internal/core/domain/model/outsourcing"
)

type ListOutsourcingRequestsQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListOutsourcingRequestsQueryHandler(uowFactory ReadUoWFactory) ListOutsourcingRequestsQueryHandler {
	return ListOutsourcingRequestsQueryHandler{uowFactory: uowFactory}
}

func (h ListOutsourcingRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListOutsourcingRequestsQuery,
) ([]OutsourcingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OutsourcingRepository()

	var (
		requests []*outsourcing.Request
		err      error
	)
	switch query.filter {
	case byOrder:
		requests, err = repo.ListByOrder(ctx, query.id)
	case byRequesting:
		requests, err = repo.ListByRequesting(ctx, query.id)
	default:
		requests, err = repo.ListByExecuting(ctx, query.id)
	}
	if err != nil {
		return nil, err
	}

	return outsourcingViews(requests), nil
}
