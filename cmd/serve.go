package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/pitchcurve/constants"
	"github.com/jsphweid/pitchcurve/db"
	"github.com/jsphweid/pitchcurve/file"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/pitch"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// PitchCache stores converted curves by request key.
type PitchCache interface {
	Get(key string) (*model.Pitch, bool, error)
	Put(key string, p *model.Pitch) error
}

var (
	addr  string
	cache PitchCache
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long: `Serves POST /pitch (project in, merged curve out) and POST /merge.
Set PITCH_DYNAMO_ENDPOINT to cache converted curves in DynamoDB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
			c, err := db.NewCache(endpoint, constants.GetDynamoTable())
			if err != nil {
				return err
			}
			SetCache(c)
		}
		serve()
		return nil
	},
}

// SetCache replaces the curve cache; nil disables caching.
func SetCache(c PitchCache) {
	cache = c
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/pitch", HandlePitch).Methods("POST")
	router.HandleFunc("/merge", HandleMerge).Methods("POST")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// cacheKey covers everything that changes the result of a request.
func cacheKey(body []byte) string {
	settings := fmt.Sprintf("\ninterval=%d resolution=%d", samplingInterval, resolution)
	return model.ContentID(append(append([]byte(nil), body...), settings...))
}

func HandlePitch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	project, err := file.DecodeProject(bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key := cacheKey(body)
	if cache != nil {
		p, ok, err := cache.Get(key)
		if err != nil {
			log.Printf("Cache lookup failed for %v: %v", key, err)
		} else if ok {
			writeJSON(w, http.StatusOK, model.ConvertResponse{ID: key, Pitch: p, Cache: true})
			return
		}
	}

	p := pitch.FromProject(project, pitchOptions()...)
	if cache != nil {
		if err := cache.Put(key, p); err != nil {
			log.Printf("Cache store failed for %v: %v", key, err)
		}
	}
	writeJSON(w, http.StatusOK, model.ConvertResponse{ID: key, Pitch: p})
}

func HandleMerge(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var input model.MergeRequestBody
	if err := json.Unmarshal(body, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input.First != nil && input.Second != nil && input.First.Relative != input.Second.Relative {
		writeError(w, http.StatusBadRequest, fmt.Errorf("cannot merge a relative curve with an absolute one"))
		return
	}
	p := pitch.MergeFromParts(input.First, input.Second)
	writeJSON(w, http.StatusOK, model.ConvertResponse{ID: model.ContentID(body), Pitch: p})
}

func serve() {
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
