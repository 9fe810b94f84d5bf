package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/google/uuid"
)

const defaultClientPageSize = 25

// clientService manages the client roster. Creates are deduplicated by
// company name so repeated visits to the same company share one record.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// FindOrCreateClient returns the existing client for the company name or creates one.
func (s *clientService) FindOrCreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, bool, error) {
	existing, err := s.clientRepo.FindClientByCompanyName(ctx, req.CompanyName)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up client by company name: %w", err)
	}

	now := time.Now().UTC()
	client := domain.Client{
		ClientID:      uuid.NewString(),
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Industry:      req.Industry,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		// A concurrent create for the same company may have won the race.
		if errors.Is(err, apperrors.ErrDuplicate) {
			winner, findErr := s.clientRepo.FindClientByCompanyName(ctx, req.CompanyName)
			if findErr == nil {
				return winner, true, nil
			}
		}
		s.LogError(ctx, err, "Failed to save client", "company", req.CompanyName)
		return nil, false, fmt.Errorf("failed to save client: %w", err)
	}

	return &client, false, nil
}

// UpdateClient updates a client's contact details.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.CreateClientRequest, requestingUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	client.CompanyName = req.CompanyName
	client.ContactPerson = req.ContactPerson
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.Industry = req.Industry
	client.Notes = req.Notes
	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = requestingUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", "client_id", clientID)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// GetClientByID retrieves a specific client.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients.
func (s *clientService) ListClients(ctx context.Context, limit int, nextToken *string) (*dto.ListClientsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultClientPageSize
	}

	clients, next, err := s.clientRepo.ListClients(ctx, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &dto.ListClientsResponse{
		Clients:   dto.ToClientResponses(clients),
		NextToken: next,
	}, nil
}
