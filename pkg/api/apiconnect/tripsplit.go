package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/pkg/api"
)

const (
	// TripServiceName is the fully-qualified name of the TripService service.
	TripServiceName = "tripsplit.v1.TripService"
	// SplitServiceName is the fully-qualified name of the SplitService service.
	SplitServiceName = "tripsplit.v1.SplitService"
)

// These constants are the fully-qualified names of the RPCs, as they appear
// in the HTTP path.
const (
	TripServiceCreateTripProcedure       = "/tripsplit.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure          = "/tripsplit.v1.TripService/GetTrip"
	TripServiceListTripsProcedure        = "/tripsplit.v1.TripService/ListTrips"
	TripServiceUpdateTripProcedure       = "/tripsplit.v1.TripService/UpdateTrip"
	TripServiceResetTripProcedure        = "/tripsplit.v1.TripService/ResetTrip"
	TripServiceDeleteTripProcedure       = "/tripsplit.v1.TripService/DeleteTrip"
	TripServiceAddParticipantProcedure   = "/tripsplit.v1.TripService/AddParticipant"
	TripServiceListParticipantsProcedure = "/tripsplit.v1.TripService/ListParticipants"
	TripServiceGetTripSummaryProcedure   = "/tripsplit.v1.TripService/GetTripSummary"
	SplitServiceAddExpenseProcedure      = "/tripsplit.v1.SplitService/AddExpense"
	SplitServiceListExpensesProcedure    = "/tripsplit.v1.SplitService/ListExpenses"
	SplitServiceQuickSplitProcedure      = "/tripsplit.v1.SplitService/QuickSplit"
)

// handlerOptions prepends the tripsplit codec so callers can still override it.
func handlerOptions(opts []connect.HandlerOption) connect.HandlerOption {
	return connect.WithHandlerOptions(append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)...)
}

// clientOptions prepends the tripsplit codec so callers can still override it.
func clientOptions(opts []connect.ClientOption) connect.ClientOption {
	return connect.WithClientOptions(append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)...)
}

// TripServiceClient is a client for the tripsplit.v1.TripService service.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	ResetTrip(context.Context, *connect.Request[api.ResetTripRequest]) (*connect.Response[api.ResetTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	GetTripSummary(context.Context, *connect.Request[api.GetTripSummaryRequest]) (*connect.Response[api.GetTripSummaryResponse], error)
}

// NewTripServiceClient constructs a client for the tripsplit.v1.TripService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &tripServiceClient{
		createTrip: connect.NewClient[api.CreateTripRequest, api.CreateTripResponse](
			httpClient,
			baseURL+TripServiceCreateTripProcedure,
			option,
		),
		getTrip: connect.NewClient[api.GetTripRequest, api.GetTripResponse](
			httpClient,
			baseURL+TripServiceGetTripProcedure,
			option,
		),
		listTrips: connect.NewClient[api.ListTripsRequest, api.ListTripsResponse](
			httpClient,
			baseURL+TripServiceListTripsProcedure,
			option,
		),
		updateTrip: connect.NewClient[api.UpdateTripRequest, api.UpdateTripResponse](
			httpClient,
			baseURL+TripServiceUpdateTripProcedure,
			option,
		),
		resetTrip: connect.NewClient[api.ResetTripRequest, api.ResetTripResponse](
			httpClient,
			baseURL+TripServiceResetTripProcedure,
			option,
		),
		deleteTrip: connect.NewClient[api.DeleteTripRequest, api.DeleteTripResponse](
			httpClient,
			baseURL+TripServiceDeleteTripProcedure,
			option,
		),
		addParticipant: connect.NewClient[api.AddParticipantRequest, api.AddParticipantResponse](
			httpClient,
			baseURL+TripServiceAddParticipantProcedure,
			option,
		),
		listParticipants: connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](
			httpClient,
			baseURL+TripServiceListParticipantsProcedure,
			option,
		),
		getTripSummary: connect.NewClient[api.GetTripSummaryRequest, api.GetTripSummaryResponse](
			httpClient,
			baseURL+TripServiceGetTripSummaryProcedure,
			option,
		),
	}
}

// tripServiceClient implements TripServiceClient.
type tripServiceClient struct {
	createTrip       *connect.Client[api.CreateTripRequest, api.CreateTripResponse]
	getTrip          *connect.Client[api.GetTripRequest, api.GetTripResponse]
	listTrips        *connect.Client[api.ListTripsRequest, api.ListTripsResponse]
	updateTrip       *connect.Client[api.UpdateTripRequest, api.UpdateTripResponse]
	resetTrip        *connect.Client[api.ResetTripRequest, api.ResetTripResponse]
	deleteTrip       *connect.Client[api.DeleteTripRequest, api.DeleteTripResponse]
	addParticipant   *connect.Client[api.AddParticipantRequest, api.AddParticipantResponse]
	listParticipants *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	getTripSummary   *connect.Client[api.GetTripSummaryRequest, api.GetTripSummaryResponse]
}

// CreateTrip calls tripsplit.v1.TripService.CreateTrip.
func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

// GetTrip calls tripsplit.v1.TripService.GetTrip.
func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

// ListTrips calls tripsplit.v1.TripService.ListTrips.
func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

// UpdateTrip calls tripsplit.v1.TripService.UpdateTrip.
func (c *tripServiceClient) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	return c.updateTrip.CallUnary(ctx, req)
}

// ResetTrip calls tripsplit.v1.TripService.ResetTrip.
func (c *tripServiceClient) ResetTrip(ctx context.Context, req *connect.Request[api.ResetTripRequest]) (*connect.Response[api.ResetTripResponse], error) {
	return c.resetTrip.CallUnary(ctx, req)
}

// DeleteTrip calls tripsplit.v1.TripService.DeleteTrip.
func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

// AddParticipant calls tripsplit.v1.TripService.AddParticipant.
func (c *tripServiceClient) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

// ListParticipants calls tripsplit.v1.TripService.ListParticipants.
func (c *tripServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

// GetTripSummary calls tripsplit.v1.TripService.GetTripSummary.
func (c *tripServiceClient) GetTripSummary(ctx context.Context, req *connect.Request[api.GetTripSummaryRequest]) (*connect.Response[api.GetTripSummaryResponse], error) {
	return c.getTripSummary.CallUnary(ctx, req)
}

// TripServiceHandler is implemented by the server side of tripsplit.v1.TripService, which manages trips, their participants and the derived summary.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	ResetTrip(context.Context, *connect.Request[api.ResetTripRequest]) (*connect.Response[api.ResetTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	GetTripSummary(context.Context, *connect.Request[api.GetTripSummaryRequest]) (*connect.Response[api.GetTripSummaryResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	createTripHandler := connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, option)
	getTripHandler := connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, option)
	listTripsHandler := connect.NewUnaryHandler(TripServiceListTripsProcedure, svc.ListTrips, option)
	updateTripHandler := connect.NewUnaryHandler(TripServiceUpdateTripProcedure, svc.UpdateTrip, option)
	resetTripHandler := connect.NewUnaryHandler(TripServiceResetTripProcedure, svc.ResetTrip, option)
	deleteTripHandler := connect.NewUnaryHandler(TripServiceDeleteTripProcedure, svc.DeleteTrip, option)
	addParticipantHandler := connect.NewUnaryHandler(TripServiceAddParticipantProcedure, svc.AddParticipant, option)
	listParticipantsHandler := connect.NewUnaryHandler(TripServiceListParticipantsProcedure, svc.ListParticipants, option)
	getTripSummaryHandler := connect.NewUnaryHandler(TripServiceGetTripSummaryProcedure, svc.GetTripSummary, option)
	return "/tripsplit.v1.TripService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceCreateTripProcedure:
			createTripHandler.ServeHTTP(w, r)
		case TripServiceGetTripProcedure:
			getTripHandler.ServeHTTP(w, r)
		case TripServiceListTripsProcedure:
			listTripsHandler.ServeHTTP(w, r)
		case TripServiceUpdateTripProcedure:
			updateTripHandler.ServeHTTP(w, r)
		case TripServiceResetTripProcedure:
			resetTripHandler.ServeHTTP(w, r)
		case TripServiceDeleteTripProcedure:
			deleteTripHandler.ServeHTTP(w, r)
		case TripServiceAddParticipantProcedure:
			addParticipantHandler.ServeHTTP(w, r)
		case TripServiceListParticipantsProcedure:
			listParticipantsHandler.ServeHTTP(w, r)
		case TripServiceGetTripSummaryProcedure:
			getTripSummaryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.CreateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.ListTrips is not implemented"))
}

func (UnimplementedTripServiceHandler) UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.UpdateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ResetTrip(context.Context, *connect.Request[api.ResetTripRequest]) (*connect.Response[api.ResetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.ResetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.DeleteTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.AddParticipant is not implemented"))
}

func (UnimplementedTripServiceHandler) ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.ListParticipants is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTripSummary(context.Context, *connect.Request[api.GetTripSummaryRequest]) (*connect.Response[api.GetTripSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.GetTripSummary is not implemented"))
}

// SplitServiceClient is a client for the tripsplit.v1.SplitService service.
type SplitServiceClient interface {
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	QuickSplit(context.Context, *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error)
}

// NewSplitServiceClient constructs a client for the tripsplit.v1.SplitService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &splitServiceClient{
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+SplitServiceAddExpenseProcedure,
			option,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+SplitServiceListExpensesProcedure,
			option,
		),
		quickSplit: connect.NewClient[api.QuickSplitRequest, api.QuickSplitResponse](
			httpClient,
			baseURL+SplitServiceQuickSplitProcedure,
			option,
		),
	}
}

// splitServiceClient implements SplitServiceClient.
type splitServiceClient struct {
	addExpense   *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	listExpenses *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	quickSplit   *connect.Client[api.QuickSplitRequest, api.QuickSplitResponse]
}

// AddExpense calls tripsplit.v1.SplitService.AddExpense.
func (c *splitServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

// ListExpenses calls tripsplit.v1.SplitService.ListExpenses.
func (c *splitServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// QuickSplit calls tripsplit.v1.SplitService.QuickSplit.
func (c *splitServiceClient) QuickSplit(ctx context.Context, req *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error) {
	return c.quickSplit.CallUnary(ctx, req)
}

// SplitServiceHandler is implemented by the server side of tripsplit.v1.SplitService, which records expenses and runs the quick split calculator.
type SplitServiceHandler interface {
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	QuickSplit(context.Context, *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	addExpenseHandler := connect.NewUnaryHandler(SplitServiceAddExpenseProcedure, svc.AddExpense, option)
	listExpensesHandler := connect.NewUnaryHandler(SplitServiceListExpensesProcedure, svc.ListExpenses, option)
	quickSplitHandler := connect.NewUnaryHandler(SplitServiceQuickSplitProcedure, svc.QuickSplit, option)
	return "/tripsplit.v1.SplitService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SplitServiceAddExpenseProcedure:
			addExpenseHandler.ServeHTTP(w, r)
		case SplitServiceListExpensesProcedure:
			listExpensesHandler.ServeHTTP(w, r)
		case SplitServiceQuickSplitProcedure:
			quickSplitHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSplitServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSplitServiceHandler struct{}

func (UnimplementedSplitServiceHandler) AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.SplitService.AddExpense is not implemented"))
}

func (UnimplementedSplitServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.SplitService.ListExpenses is not implemented"))
}

func (UnimplementedSplitServiceHandler) QuickSplit(context.Context, *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.SplitService.QuickSplit is not implemented"))
}
