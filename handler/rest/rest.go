package rest

import (
	"errors"
	"net/http"

	"diamond/core"
	"diamond/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	system *core.System,
	dapp *core.Wallet,
	tokenStore core.ITokenStore,
	blacklistStore core.IBlacklistStore,
	priceStore core.IPriceStore,
	proposalStore core.ProposalStore,
	transactionStore core.TransactionStore,
	walletz core.IWalletService,
	proposalz core.ProposalService) http.Handler {

	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/token", tokenHandler(system, tokenStore, priceStore))
	router.Get("/reserve", reserveHandler(system, tokenStore, walletz))
	router.Get("/blacklists", blacklistsHandler(blacklistStore))
	router.Get("/transactions", transactionsHandler(transactionStore))
	router.Get("/proposals", proposalsHandler(proposalStore, proposalz))
	router.Get("/proposals/{trace_id}", proposalHandler(proposalStore, proposalz))
	router.Post("/pay-requests", payRequestsHandler(system, walletz))

	return router
}
