package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/RutikKulkarni/Football-Manager/internals/market"
	"github.com/RutikKulkarni/Football-Manager/internals/notification"
	"github.com/RutikKulkarni/Football-Manager/internals/team"

	"github.com/go-chi/chi/v5"
)

type listRequestBody struct {
	AskingPrice int64 `json:"asking_price"`
}

// callerTeamID resolves the authenticated user's team, answering 404 itself
// when the team does not exist yet.
func (app *App) callerTeamID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Context().Value("user_id").(int)

	details, err := team.New(app.DB).GetTeamByUser(userID)
	if errors.Is(err, team.ErrTeamNotReady) {
		sendResponse(w, httpResp{Status: http.StatusNotFound, IsError: true, Error: err.Error()})
		return "", false
	}
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return "", false
	}

	return details.TeamID, true
}

func (app *App) GetTransferMarket(w http.ResponseWriter, r *http.Request) {

	filter := market.Filter{
		TeamName:   r.URL.Query().Get("team_name"),
		PlayerName: r.URL.Query().Get("player_name"),
	}

	if raw := r.URL.Query().Get("min_price"); raw != "" {
		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "min_price must be an integer"})
			return
		}
		filter.MinPrice = &price
	}
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "max_price must be an integer"})
			return
		}
		filter.MaxPrice = &price
	}

	listings, err := market.New(app.DB).Search(r.Context(), filter)
	if err != nil {
		sendResponse(w, httpResp{Status: statusForMarketError(err), IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: listings})
}

func (app *App) ListPlayer(w http.ResponseWriter, r *http.Request) {

	playerID := chi.URLParam(r, "player_id")

	teamID, ok := app.callerTeamID(w, r)
	if !ok {
		return
	}

	var body listRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	err := market.New(app.DB).ListPlayer(r.Context(), teamID, playerID, body.AskingPrice)
	if err != nil {
		sendResponse(w, httpResp{Status: statusForMarketError(err), IsError: true, Error: err.Error()})
		return
	}

	app.publishMarketEvent(MarketEvent{Kind: "listed", PlayerID: playerID, TeamID: teamID, Price: body.AskingPrice})

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Player added to transfer list"}})
}

func (app *App) UnlistPlayer(w http.ResponseWriter, r *http.Request) {

	playerID := chi.URLParam(r, "player_id")

	teamID, ok := app.callerTeamID(w, r)
	if !ok {
		return
	}

	err := market.New(app.DB).UnlistPlayer(r.Context(), teamID, playerID)
	if err != nil {
		sendResponse(w, httpResp{Status: statusForMarketError(err), IsError: true, Error: err.Error()})
		return
	}

	app.publishMarketEvent(MarketEvent{Kind: "unlisted", PlayerID: playerID, TeamID: teamID})

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Player removed from transfer list"}})
}

func (app *App) BuyPlayer(w http.ResponseWriter, r *http.Request) {

	playerID := chi.URLParam(r, "player_id")
	userID := r.Context().Value("user_id").(int)

	teamID, ok := app.callerTeamID(w, r)
	if !ok {
		return
	}

	result, err := market.New(app.DB).BuyPlayer(r.Context(), teamID, playerID)
	if err != nil {
		sendResponse(w, httpResp{Status: statusForMarketError(err), IsError: true, Error: err.Error()})
		return
	}

	app.notifyTransfer(userID, result)
	app.publishMarketEvent(MarketEvent{
		Kind:       "sold",
		PlayerID:   result.Player.PlayerID,
		PlayerName: result.Player.Name,
		TeamID:     teamID,
		Price:      result.PricePaid,
	})

	sendResponse(w, httpResp{Status: http.StatusOK, Data: result})
}

// notifyTransfer records a notification for both sides of the purchase.
// Failures here never undo the transfer; they are logged and dropped.
func (app *App) notifyTransfer(buyerUserID int, result *market.PurchaseResult) {
	sellerUserID, err := team.New(app.DB).UserIDForTeam(result.SellerTeamID)
	if err != nil {
		log.Printf("Failed to resolve seller of team %s: %v", result.SellerTeamID, err)
		return
	}

	err = notification.New(app.DB).RecordTransfer(buyerUserID, sellerUserID, result.Player.Name, result.PricePaid)
	if err != nil {
		log.Printf("Failed to record transfer notifications: %v", err)
	}
}
