package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AttributeInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (in AttributeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("Name is required")
	}
	if strings.TrimSpace(in.Value) == "" {
		return invalid("Value is required")
	}
	return nil
}

// AttributeService manages one kind of product attribute, colors or sizes.
type AttributeService struct {
	kind       AttributeKind
	attributes AttributeRepository
	owners     *StoreOwnership
}

func NewAttributeService(kind AttributeKind, attributes AttributeRepository, owners *StoreOwnership) *AttributeService {
	return &AttributeService{kind: kind, attributes: attributes, owners: owners}
}

func (s *AttributeService) Kind() AttributeKind {
	return s.kind
}

func (s *AttributeService) Get(ctx context.Context, id string) (*Attribute, error) {
	if id == "" {
		return nil, invalid(s.kind.Resource() + " id is required")
	}
	attribute, err := s.attributes.GetAttribute(ctx, s.kind, id)
	if err != nil {
		return nil, notFound(s.kind.Resource(), err)
	}
	return attribute, nil
}

func (s *AttributeService) List(ctx context.Context, storeID string) ([]Attribute, error) {
	if storeID == "" {
		return nil, invalid("Store id is required")
	}
	return s.attributes.ListAttributes(ctx, s.kind, storeID)
}

func (s *AttributeService) Create(ctx context.Context, userID, storeID string, in AttributeInput) (*Attribute, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	attribute := &Attribute{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Name:      in.Name,
		Value:     in.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.attributes.CreateAttribute(ctx, s.kind, attribute); err != nil {
		return nil, fmt.Errorf("can not create %s: %w", s.kind, err)
	}
	return attribute, nil
}

func (s *AttributeService) Update(ctx context.Context, userID, storeID, id string, in AttributeInput) (*Attribute, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, invalid(s.kind.Resource() + " id is required")
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	attribute, err := s.find(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	attribute.Name = in.Name
	attribute.Value = in.Value
	attribute.UpdatedAt = time.Now().UTC()
	if err := s.attributes.UpdateAttribute(ctx, s.kind, attribute); err != nil {
		return nil, notFound(s.kind.Resource(), err)
	}
	return attribute, nil
}

func (s *AttributeService) Delete(ctx context.Context, userID, storeID, id string) (*Attribute, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if id == "" {
		return nil, invalid(s.kind.Resource() + " id is required")
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	attribute, err := s.find(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if err := s.attributes.DeleteAttribute(ctx, s.kind, id); err != nil {
		return nil, notFound(s.kind.Resource(), err)
	}
	return attribute, nil
}

func (s *AttributeService) find(ctx context.Context, storeID, id string) (*Attribute, error) {
	attribute, err := s.attributes.GetAttribute(ctx, s.kind, id)
	if err != nil {
		return nil, notFound(s.kind.Resource(), err)
	}
	if attribute.StoreID != storeID {
		return nil, &NotFoundError{Resource: s.kind.Resource()}
	}
	return attribute, nil
}
