// Package clientadm casos de uso de administración de clientes.
package clientadm

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	clientdomain "github.com/jhoicas/ecommerce-api/internal/domain/clientadm"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// AddClientUseCase registra un cliente.
type AddClientUseCase struct {
	repo clientdomain.Gateway
}

// NewAddClientUseCase construye el caso de uso.
func NewAddClientUseCase(repo clientdomain.Gateway) *AddClientUseCase {
	return &AddClientUseCase{repo: repo}
}

// Execute valida y persiste el cliente.
func (uc *AddClientUseCase) Execute(ctx context.Context, in dto.AddClientInput) (*dto.ClientOutput, error) {
	var addr shared.Address
	if in.Address != nil {
		a, err := shared.NewAddress(in.Address.Street, in.Address.Number, in.Address.Complement,
			in.Address.City, in.Address.State, in.Address.ZipCode)
		if err != nil {
			return nil, err
		}
		addr = a
	}
	client, err := clientdomain.New(clientdomain.Props{
		ID:       shared.ID(in.ID),
		Name:     in.Name,
		Email:    in.Email,
		Document: in.Document,
		Address:  addr,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Add(ctx, client); err != nil {
		return nil, err
	}
	out := toClientOutput(client)
	return &out, nil
}

// FindClientUseCase obtiene un cliente por ID.
type FindClientUseCase struct {
	repo clientdomain.Gateway
}

// NewFindClientUseCase construye el caso de uso.
func NewFindClientUseCase(repo clientdomain.Gateway) *FindClientUseCase {
	return &FindClientUseCase{repo: repo}
}

// Execute devuelve NotFound si el cliente no existe.
func (uc *FindClientUseCase) Execute(ctx context.Context, in dto.FindClientInput) (*dto.ClientOutput, error) {
	client, err := uc.repo.Find(ctx, shared.ID(in.ID))
	if err != nil {
		return nil, err
	}
	out := toClientOutput(client)
	return &out, nil
}

func toClientOutput(c *clientdomain.Client) dto.ClientOutput {
	return dto.ClientOutput{
		ID:       c.ID().String(),
		Name:     c.Name,
		Email:    c.Email,
		Document: c.Document,
		Address: dto.AddressDTO{
			Street:     c.Address.Street(),
			Number:     c.Address.Number(),
			Complement: c.Address.Complement(),
			City:       c.Address.City(),
			State:      c.Address.State(),
			ZipCode:    c.Address.ZipCode(),
		},
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
