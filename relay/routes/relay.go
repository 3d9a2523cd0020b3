package routes

import (
	"net/http"
	"relay/controllers"
	"relay/utils/logging"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RelayRoutes exposes the websocket relay endpoint. Connections are accepted
// unconditionally; each one gets its own serial read loop.
func RelayRoutes(ctrl *controllers.RelayController) chi.Router {
	r := chi.NewRouter()
	r.HandleFunc("/llm_proxy", func(w http.ResponseWriter, req *http.Request) {
		conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := req.Context()
		connID := uuid.New().String()
		logging.AppLogger.Info("relay connection opened", zap.String("conn_id", connID))

		// One message cycle fully completes before the next read: no
		// pipelining, strict arrival-order replies.
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				logging.AppLogger.Info("relay connection closed",
					zap.String("conn_id", connID), zap.Error(err))
				return
			}
			if typ != websocket.MessageText {
				conn.Close(websocket.StatusUnsupportedData, "unsupported data")
				return
			}

			frames, err := ctrl.Respond(ctx, data)
			if err != nil {
				// No retry and no error frame: the client sees silence and
				// then disconnection.
				logging.ErrorLogger.Error("relay message cycle failed",
					zap.String("conn_id", connID), zap.Error(err))
				return
			}
			for _, frame := range frames {
				if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
					return
				}
			}
		}
	})
	return r
}
