package usecase

import (
	"context"
	"errors"
	"log"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

var ErrInvalidAddressID = errors.New("invalid address id")

// IAddressUseCase manages the caller's address book.
type IAddressUseCase interface {
	List(ctx context.Context, token string) (entities.AddressBook, error)
	Create(ctx context.Context, token string, in entities.AddressInput) (entities.Address, error)
	Update(ctx context.Context, token, id string, in entities.AddressInput) (entities.Address, error)
	Delete(ctx context.Context, token, id string) error
}

type AddressUseCase struct {
	addresses interfaces.IAddressGateway
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(addresses interfaces.IAddressGateway) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

func (u *AddressUseCase) List(ctx context.Context, token string) (entities.AddressBook, error) {
	if trimmed(token) == "" {
		return nil, ErrSessionRequired
	}
	list, err := u.addresses.List(ctx, token)
	if err != nil {
		log.Printf("[address][usecase] list failed err=%v", err)
		return nil, err
	}
	return entities.GroupAddresses(list), nil
}

func (u *AddressUseCase) Create(ctx context.Context, token string, in entities.AddressInput) (entities.Address, error) {
	if trimmed(token) == "" {
		return entities.Address{}, ErrSessionRequired
	}
	if v := entities.ValidateAddress(in); !v.Empty() {
		log.Printf("[address][usecase] create rejected violations=%d", len(v))
		return entities.Address{}, invalid(v)
	}
	a, err := u.addresses.Create(ctx, token, in.Payload())
	if err != nil {
		log.Printf("[address][usecase] create failed type=%s err=%v", in.Type, err)
		return entities.Address{}, err
	}
	log.Printf("[address][usecase] created id=%s type=%s", a.ID, a.Type)
	return a, nil
}

func (u *AddressUseCase) Update(ctx context.Context, token, id string, in entities.AddressInput) (entities.Address, error) {
	if trimmed(token) == "" {
		return entities.Address{}, ErrSessionRequired
	}
	id = trimmed(id)
	if id == "" {
		return entities.Address{}, ErrInvalidAddressID
	}
	if v := entities.ValidateAddress(in); !v.Empty() {
		log.Printf("[address][usecase] update rejected id=%s violations=%d", id, len(v))
		return entities.Address{}, invalid(v)
	}
	a, err := u.addresses.Update(ctx, token, id, in.Payload())
	if err != nil {
		log.Printf("[address][usecase] update failed id=%s err=%v", id, err)
		return entities.Address{}, err
	}
	return a, nil
}

func (u *AddressUseCase) Delete(ctx context.Context, token, id string) error {
	if trimmed(token) == "" {
		return ErrSessionRequired
	}
	id = trimmed(id)
	if id == "" {
		return ErrInvalidAddressID
	}
	if err := u.addresses.Delete(ctx, token, id); err != nil {
		log.Printf("[address][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[address][usecase] deleted id=%s", id)
	return nil
}
