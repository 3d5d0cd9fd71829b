package model

import (
	"strconv"

	"github.com/google/uuid"
)

var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/jsphweid/pitchcurve"))

// PartID is the ID given to the i-th part when its source has none. The same
// index always gives the same ID.
func PartID(i int) string {
	return uuid.NewSHA1(namespace, []byte("part/"+strconv.Itoa(i))).String()
}

// ContentID derives a stable ID from arbitrary bytes, e.g. a request body.
func ContentID(data []byte) string {
	return uuid.NewSHA1(namespace, data).String()
}
