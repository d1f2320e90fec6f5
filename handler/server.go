package handler

import (
	"net/http"

	"diamond/core"
	"diamond/handler/hc"
	"diamond/handler/render"
	"diamond/handler/rest"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	system           *core.System
	dapp             *core.Wallet
	tokenStore       core.ITokenStore
	blacklistStore   core.IBlacklistStore
	priceStore       core.IPriceStore
	proposalStore    core.ProposalStore
	transactionStore core.TransactionStore
	walletz          core.IWalletService
	proposalz        core.ProposalService
}

// New new server
func New(
	system *core.System,
	dapp *core.Wallet,
	tokenStore core.ITokenStore,
	blacklistStore core.IBlacklistStore,
	priceStore core.IPriceStore,
	proposalStore core.ProposalStore,
	transactionStore core.TransactionStore,
	walletz core.IWalletService,
	proposalz core.ProposalService) Server {

	return Server{
		system:           system,
		dapp:             dapp,
		tokenStore:       tokenStore,
		blacklistStore:   blacklistStore,
		priceStore:       priceStore,
		proposalStore:    proposalStore,
		transactionStore: transactionStore,
		walletz:          walletz,
		proposalz:        proposalz,
	}
}

// Handle handle all routes
func (s Server) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(render.WrapResponse(true))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, twirp.NotFoundError("not found"))
	})

	r.Mount("/hc", hc.Handle(s.system.Version))
	r.Mount("/api", rest.Handle(
		s.system,
		s.dapp,
		s.tokenStore,
		s.blacklistStore,
		s.priceStore,
		s.proposalStore,
		s.transactionStore,
		s.walletz,
		s.proposalz,
	))

	return r
}
