package rest

import (
	"net/http"

	"diamond/core"
	"diamond/handler/param"
	"diamond/handler/render"
)

func blacklistsHandler(blacklistStr core.IBlacklistStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Cursor uint64 `json:"cursor"`
			Limit  int    `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > core.MaxBlacklistSize {
			limit = core.MaxBlacklistSize
		}

		entries, e := blacklistStr.List(ctx, params.Cursor, limit)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		count, e := blacklistStr.Count(ctx)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, render.H{
			"blacklists": entries,
			"count":      count,
			"capacity":   core.MaxBlacklistSize,
		})
	}
}
