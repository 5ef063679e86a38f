package usecase

import (
	"context"
	"errors"
	"testing"

	"freight_portal/internal/domain/entities"
	mock_interfaces "freight_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMetadataCache(t *testing.T) {
	t.Run("loads once until invalidated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteGateway(ctrl)
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		cache := NewMetadataCache(quotes, catalog)

		quotes.EXPECT().Metadata(gomock.Any(), "tok").Return(entities.QuoteMetadata{Origins: []string{"Paris"}}, nil).Times(2)
		catalog.EXPECT().ListSchedules(gomock.Any(), "tok").Return([]entities.Schedule{{ID: "s-1"}}, nil).Times(2)

		for i := 0; i < 3; i++ {
			md, err := cache.Get(context.Background(), "tok")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(md.Origins) != 1 || len(md.Schedules) != 1 {
				t.Fatalf("unexpected metadata: %+v", md)
			}
		}
		cache.Invalidate()
		if _, err := cache.Get(context.Background(), "tok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("schedules are optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteGateway(ctrl)
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		cache := NewMetadataCache(quotes, catalog)

		quotes.EXPECT().Metadata(gomock.Any(), "").Return(entities.QuoteMetadata{Origins: []string{"Paris"}}, nil)
		catalog.EXPECT().ListSchedules(gomock.Any(), "").Return(nil, errors.New("not found"))

		md, err := cache.Get(context.Background(), "")
		if err != nil || len(md.Origins) != 1 || md.Schedules != nil {
			t.Fatalf("unexpected result: %+v %v", md, err)
		}
	})

	t.Run("failures are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteGateway(ctrl)
		cache := NewMetadataCache(quotes, nil)

		gomock.InOrder(
			quotes.EXPECT().Metadata(gomock.Any(), "").Return(entities.QuoteMetadata{}, errors.New("down")),
			quotes.EXPECT().Metadata(gomock.Any(), "").Return(entities.QuoteMetadata{Origins: []string{"Lyon"}}, nil),
		)

		if _, err := cache.Get(context.Background(), ""); err == nil {
			t.Fatalf("expected error")
		}
		md, err := cache.Get(context.Background(), "")
		if err != nil || md.Origins[0] != "Lyon" {
			t.Fatalf("unexpected result: %+v %v", md, err)
		}
	})

	t.Run("waiting caller honours its own context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteGateway(ctrl)
		cache := NewMetadataCache(quotes, nil)

		release := make(chan struct{})
		started := make(chan struct{})
		quotes.EXPECT().Metadata(gomock.Any(), "").DoAndReturn(func(context.Context, string) (entities.QuoteMetadata, error) {
			close(started)
			<-release
			return entities.QuoteMetadata{Origins: []string{"Paris"}}, nil
		})

		done := make(chan struct{})
		go func() {
			defer close(done)
			if _, err := cache.Get(context.Background(), ""); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
		<-started

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := cache.Get(ctx, ""); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}

		close(release)
		<-done
		md, err := cache.Get(context.Background(), "")
		if err != nil || md.Origins[0] != "Paris" {
			t.Fatalf("unexpected result: %+v %v", md, err)
		}
	})

	t.Run("invalidation during a load is not overwritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteGateway(ctrl)
		cache := NewMetadataCache(quotes, nil)

		gomock.InOrder(
			quotes.EXPECT().Metadata(gomock.Any(), "").DoAndReturn(func(context.Context, string) (entities.QuoteMetadata, error) {
				cache.Invalidate()
				return entities.QuoteMetadata{Origins: []string{"Old"}}, nil
			}),
			quotes.EXPECT().Metadata(gomock.Any(), "").Return(entities.QuoteMetadata{Origins: []string{"New"}}, nil),
		)

		if md, err := cache.Get(context.Background(), ""); err != nil || md.Origins[0] != "Old" {
			t.Fatalf("unexpected first result: %+v %v", md, err)
		}
		if md, err := cache.Get(context.Background(), ""); err != nil || md.Origins[0] != "New" {
			t.Fatalf("expected a fresh load, got %+v %v", md, err)
		}
	})
}
