package services

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, limit int, nextToken *string) (*dto.ListClientsResponse, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// FindOrCreateClient returns the existing client for the company name or
	// creates one. The boolean reports whether the client already existed.
	FindOrCreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, bool, error)

	// UpdateClient updates a client's contact details.
	UpdateClient(ctx context.Context, clientID string, req dto.CreateClientRequest, requestingUserID string) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
