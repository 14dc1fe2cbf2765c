package app

import (
	"net/http"

	"github.com/cinetix/movie-booking-system/api"
)

func (app *application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheaterListResponse{Theaters: make([]api.Theater, 0, len(theaters))}

	for _, theater := range theaters {
		screens := make([]api.Screen, 0, len(theater.Screens))
		for _, screen := range theater.Screens {
			screens = append(screens, api.Screen{
				Id:         screen.ID,
				Number:     screen.Number,
				TotalSeats: screen.TotalSeats,
			})
		}

		resp.Theaters = append(resp.Theaters, api.Theater{
			Id:      theater.ID,
			Name:    theater.Name,
			City:    theater.City,
			Address: theater.Address,
			Screens: screens,
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
