package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tokenledger/internal/http/handler/middleware"
	"tokenledger/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Mint               = "POST /token/mint"
	Transfer           = "POST /token/transfer"
	Burn               = "POST /token/burn"
	GetBalance         = "GET /token/balance/{address}"
	GetHolders         = "GET /token/holders"
	GetTransactions    = "GET /token/transactions"
	GetTransactionsRLP = "GET /token/transactions/{rlpHash}"
	GetInfo            = "GET /token/info"
	Reset              = "POST /token/reset"
)

type TokenHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tokens           TokenService
}

func NewTokenHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, tokenService TokenService) *TokenHandler {
	return &TokenHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tokens:           tokenService,
	}
}

// Register binds every token route on mux.
func (h *TokenHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Mint, h.HandleMint)
	mux.HandleFunc(Transfer, h.HandleTransfer)
	mux.HandleFunc(Burn, h.HandleBurn)
	mux.HandleFunc(GetBalance, h.HandleGetBalance)
	mux.HandleFunc(GetHolders, h.HandleGetHolders)
	mux.HandleFunc(GetTransactions, h.HandleGetTransactions)
	mux.HandleFunc(GetTransactionsRLP, h.HandleGetTransactionsRLP)
	mux.HandleFunc(GetInfo, h.HandleGetInfo)
	mux.HandleFunc(Reset, h.HandleReset)
}

func (h *TokenHandler) HandleMint(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.MintRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not mint tokens",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Mint,
			"request_id", requestId)
		return
	}

	record, err := h.tokens.Mint(req.ToMessage())
	if err != nil {
		resp, code := errorResponse("Could not mint tokens", err)
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("mint failed",
			"error", err,
			"handler", Mint,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"transaction": record}, http.StatusCreated, requestId)
}

func (h *TokenHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.TransferRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not transfer tokens",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Transfer,
			"request_id", requestId)
		return
	}

	record, err := h.tokens.Transfer(req.ToMessage())
	if err != nil {
		resp, code := errorResponse("Could not transfer tokens", err)
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("transfer failed",
			"error", err,
			"handler", Transfer,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"transaction": record}, http.StatusCreated, requestId)
}

func (h *TokenHandler) HandleBurn(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.BurnRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not burn tokens",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Burn,
			"request_id", requestId)
		return
	}

	record, err := h.tokens.Burn(req.ToMessage())
	if err != nil {
		resp, code := errorResponse("Could not burn tokens", err)
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("burn failed",
			"error", err,
			"handler", Burn,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"transaction": record}, http.StatusCreated, requestId)
}

func (h *TokenHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	balance, err := h.tokens.Balance(r.PathValue("address"))
	if err != nil {
		resp, code := errorResponse("Could not retrieve balance", err)
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("failed to get balance",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{"balance": balance}, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleGetHolders(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	search := r.URL.Query().Get("search")
	holders := h.tokens.Holders(search)

	h.logs.Infow("holders retrieved",
		"search", search,
		"count", len(holders),
		"handler", GetHolders,
		"request_id", requestId)

	h.respond(w, map[string]any{"holders": holders}, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	historyRequest, err := payload.NewHistoryRequest(r.URL.Query())
	if err == nil {
		err = historyRequest.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	transactions := h.tokens.History(historyRequest.Limit)

	h.respond(w, map[string]any{"transactions": transactions}, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleGetTransactionsRLP(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	rlphex := r.PathValue("rlpHash")
	if rlphex == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "rlp hash parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing rlpHash parameter",
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	transactions, err := h.tokens.LookupTransactions(rlphex)
	if err != nil {
		resp, code := errorResponse("Request failed", err)
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("failed to look up transactions",
			"error", err,
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions looked up",
		"count", len(transactions),
		"handler", GetTransactionsRLP,
		"request_id", requestId)

	h.respond(w, map[string]any{"transactions": transactions}, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleGetInfo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	h.respond(w, map[string]any{"token": h.tokens.Info()}, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	if err := h.tokens.Reset(); err != nil {
		resp, code := errorResponse("Could not reset the ledger", err)
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("reset failed",
			"error", err,
			"handler", Reset,
			"request_id", requestId)
		return
	}

	h.logs.Infow("ledger reset", "handler", Reset, "request_id", requestId)
	h.respond(w, Response{Message: "All data cleared"}, http.StatusOK, requestId)
}

func (h *TokenHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
