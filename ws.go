package timetable

import (
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
)

func (app *EventTimetable) wsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/board", prefix),
		app.boardSocketHandler,
	)
}

// boardSocketHandler keeps a page subscribed to refresh notifications
// until it goes away. The page never sends anything itself.
func (app *EventTimetable) boardSocketHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	conn, err := websocket.Accept(
		w,
		r,
		//nolint:exhaustruct //other fields are optional
		&websocket.AcceptOptions{InsecureSkipVerify: true},
	)
	if err != nil {
		log.Printf("websocket accept error: %v", err)
		return
	}
	defer conn.Close(
		websocket.StatusNormalClosure,
		"closing connection",
	) // normal closure

	id := app.Services.Refresh.Subscribe(conn)
	defer app.Services.Refresh.Unsubscribe(id)

	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
}
