package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/storage"
)

// Validation errors returned to clients as CodeInvalidArgument.
var (
	ErrTripIDRequired     = errors.New("trip_id is required")
	ErrNameRequired       = errors.New("name is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")
	ErrPayerRequired      = errors.New("payer_id is required")
	ErrNoParticipants     = errors.New("add at least one participant before adding expenses")
	ErrUnknownParticipant = errors.New("not a participant of this trip")
)

var invalidArgumentErrors = []error{
	ErrTripIDRequired,
	ErrNameRequired,
	ErrTitleRequired,
	ErrAmountNotPositive,
	ErrPayerRequired,
	ErrNoParticipants,
	ErrUnknownParticipant,
	calculator.ErrInvalidQuickSplit,
	calculator.ErrNegativeTip,
}

// codeOf maps a service or storage error to the Connect code sent to the client.
func codeOf(err error) connect.Code {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.CodeNotFound
	}
	for _, target := range invalidArgumentErrors {
		if errors.Is(err, target) {
			return connect.CodeInvalidArgument
		}
	}
	return connect.CodeInternal
}

// fail logs err under op and converts it into a Connect error.
func fail(op string, err error, attrs ...any) *connect.Error {
	code := codeOf(err)
	attrs = append(attrs, "code", code, "error", err)
	if code == connect.CodeInternal {
		slog.Error(op+" failed", attrs...)
	} else {
		slog.Warn(op+" failed", attrs...)
	}
	return connect.NewError(code, err)
}
