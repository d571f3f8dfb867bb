package clientadm

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	clientdomain "github.com/jhoicas/ecommerce-api/internal/domain/clientadm"
)

// Facade punto de entrada del módulo para handlers y otros módulos.
type Facade struct {
	add  *AddClientUseCase
	find *FindClientUseCase
}

// NewFacade arma la fachada sobre un repositorio de clientes.
func NewFacade(repo clientdomain.Gateway) *Facade {
	return &Facade{
		add:  NewAddClientUseCase(repo),
		find: NewFindClientUseCase(repo),
	}
}

func (f *Facade) Add(ctx context.Context, in dto.AddClientInput) (*dto.ClientOutput, error) {
	return f.add.Execute(ctx, in)
}

func (f *Facade) Find(ctx context.Context, in dto.FindClientInput) (*dto.ClientOutput, error) {
	return f.find.Execute(ctx, in)
}
