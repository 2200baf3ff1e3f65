package http

import (
	"errors"
	"net/http"

	"dentallab/internal/adapters/in/http/api"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListOfferings handles GET /api/v1/offerings.
func (s *Server) ListOfferings(c echo.Context, params api.ListOfferingsParams) error {
	serviceType, err := kernel.ParseServiceType(params.ServiceType)
	if err != nil {
		return err
	}
	query, err := queries.NewListOfferingsByServiceTypeQuery(serviceType)
	if err != nil {
		return err
	}

	views, err := s.h.ListOfferings.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offeringsOf(views))
}

// ListFulfillerOfferings handles GET /api/v1/fulfillers/{fulfillerId}/offerings.
func (s *Server) ListFulfillerOfferings(c echo.Context, fulfillerId int64) error {
	id, err := kernel.NewID(fulfillerId)
	if err != nil {
		return err
	}
	query, err := queries.NewListOfferingsByFulfillerQuery(id)
	if err != nil {
		return err
	}

	views, err := s.h.ListOfferings.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offeringsOf(views))
}

// GetOffering handles GET /api/v1/fulfillers/{fulfillerId}/offerings/{serviceType}.
func (s *Server) GetOffering(c echo.Context, fulfillerId int64, serviceType string) error {
	id, st, err := offeringKey(fulfillerId, serviceType)
	if err != nil {
		return err
	}
	return s.offeringResponse(c, id, st)
}

// SaveOffering handles PUT /api/v1/fulfillers/{fulfillerId}/offerings/{serviceType}.
func (s *Server) SaveOffering(c echo.Context, fulfillerId int64, serviceType string) error {
	var body api.OfferingSpec
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, st, keyErr := offeringKey(fulfillerId, serviceType)
	spec, specErr := offeringSpec(body)
	if err := errors.Join(keyErr, specErr); err != nil {
		return err
	}

	cmd, err := commands.NewSaveOfferingCommand(actorOf(c), id, st, spec)
	if err != nil {
		return err
	}
	if _, err := s.h.SaveOffering.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.offeringResponse(c, id, st)
}

// SetOfferingActive handles PUT /api/v1/fulfillers/{fulfillerId}/offerings/{serviceType}/active.
func (s *Server) SetOfferingActive(c echo.Context, fulfillerId int64, serviceType string) error {
	var body api.OfferingActivation
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, st, err := offeringKey(fulfillerId, serviceType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetOfferingActiveCommand(actorOf(c), id, st, body.Active)
	if err != nil {
		return err
	}
	if _, err := s.h.SetOfferingActive.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.offeringResponse(c, id, st)
}

// DeleteOffering handles DELETE /api/v1/fulfillers/{fulfillerId}/offerings/{serviceType}.
func (s *Server) DeleteOffering(c echo.Context, fulfillerId int64, serviceType string) error {
	id, st, err := offeringKey(fulfillerId, serviceType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOfferingCommand(actorOf(c), id, st)
	if err != nil {
		return err
	}
	if err := s.h.DeleteOffering.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func offeringKey(fulfillerID int64, serviceType string) (kernel.ID, kernel.ServiceType, error) {
	id, idErr := kernel.NewID(fulfillerID)
	st, stErr := kernel.ParseServiceType(serviceType)
	if err := errors.Join(idErr, stErr); err != nil {
		return kernel.ID{}, "", err
	}
	return id, st, nil
}

func offeringSpec(body api.OfferingSpec) (catalog.Spec, error) {
	policy, policyErr := catalog.ParseExecutionPolicy(body.Policy)
	selfTerms, selfErr := termsFrom(body.SelfTerms)
	delegateTerms, delegateErr := termsFrom(body.DelegateTerms)

	var (
		preferred    *kernel.ID
		preferredErr error
	)
	if body.PreferredDelegateId != nil {
		var id kernel.ID
		if id, preferredErr = kernel.NewID(*body.PreferredDelegateId); preferredErr == nil {
			preferred = &id
		}
	}

	if err := errors.Join(policyErr, selfErr, delegateErr, preferredErr); err != nil {
		return catalog.Spec{}, err
	}
	return catalog.Spec{
		Policy:              policy,
		SelfTerms:           selfTerms,
		DelegateTerms:       delegateTerms,
		PreferredDelegateID: preferred,
		Description:         body.Description,
	}, nil
}

func termsFrom(t *api.Terms) (*catalog.Terms, error) {
	if t == nil {
		return nil, nil
	}
	price, err := kernel.NewMoneyFromString(t.Price)
	if err != nil {
		return nil, err
	}
	terms, err := catalog.NewTerms(price, t.LeadTimeDays)
	if err != nil {
		return nil, err
	}
	return &terms, nil
}
