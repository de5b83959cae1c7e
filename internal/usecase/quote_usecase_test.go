package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	mock_interfaces "github.com/Fikriansyah-12/habitus-fe/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_FetchByQuoteNo(t *testing.T) {
	t.Run("success sets current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIQuoteClient(ctrl)
		uc := NewQuoteUseCase(client)

		client.EXPECT().FindByQuoteNo(gomock.Any(), "Q-2024-001").
			Return(response.QuoteResponse{ID: "q-1", QuoteNo: "Q-2024-001"}, nil)

		quote, err := uc.FetchByQuoteNo(context.Background(), "Q-2024-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", quote)
		}
		if current := uc.State().Current; current == nil || current.QuoteNo != "Q-2024-001" {
			t.Fatalf("current not set: %+v", current)
		}
	})

	t.Run("unknown number records the message and re-raises", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIQuoteClient(ctrl)
		uc := NewQuoteUseCase(client)

		client.EXPECT().FindByQuoteNo(gomock.Any(), "Q-404").
			Return(response.QuoteResponse{}, errors.New("Quote not found"))

		_, err := uc.FetchByQuoteNo(context.Background(), "Q-404")
		if err == nil || err.Error() != "Quote not found" {
			t.Fatalf("expected not found error, got %v", err)
		}
		if uc.State().ErrorMessage != "Quote not found" {
			t.Fatalf("message not recorded: %q", uc.State().ErrorMessage)
		}
	})
}

func TestQuoteUseCase_CreateUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_interfaces.NewMockIQuoteClient(ctrl)
	uc := NewQuoteUseCase(client)

	client.EXPECT().FindAll(gomock.Any()).
		Return([]response.QuoteResponse{{ID: "q-1", QuoteNo: "Q-1"}}, nil)
	client.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(response.QuoteResponse{ID: "q-2", QuoteNo: "Q-2"}, nil)
	client.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).
		Return(response.QuoteResponse{ID: "q-1", QuoteNo: "Q-1-rev"}, nil)
	client.EXPECT().Delete(gomock.Any(), "q-2").Return(nil)

	uc.FetchAll(context.Background())

	if _, err := uc.Create(context.Background(), request.CreateQuoteRequest{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	state := uc.State()
	if len(state.Quotes) != 2 || state.Quotes[1].ID != "q-2" {
		t.Fatalf("created quote not appended: %+v", state.Quotes)
	}
	if state.SuccessMessage != "Quote created successfully" {
		t.Fatalf("unexpected success message: %q", state.SuccessMessage)
	}

	if _, err := uc.Update(context.Background(), "q-1", request.UpdateQuoteRequest{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := uc.State().Quotes[0].QuoteNo; got != "Q-1-rev" {
		t.Fatalf("list element not replaced: %q", got)
	}

	if err := uc.Delete(context.Background(), "q-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	state = uc.State()
	if len(state.Quotes) != 1 || state.Quotes[0].ID != "q-1" {
		t.Fatalf("element not removed: %+v", state.Quotes)
	}
	if state.SuccessMessage != "Quote deleted successfully" {
		t.Fatalf("unexpected success message: %q", state.SuccessMessage)
	}
}
