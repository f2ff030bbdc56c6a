package app

import (
	"errors"

	"github.com/llehouerou/showcase/internal/ui/thumbnail"
)

func thumbnailFailure(paths ...string) thumbnail.WarmedMsg {
	failed := make(map[string]error, len(paths))
	for _, p := range paths {
		failed[p] = errors.New("unexpected EOF")
	}
	return thumbnail.WarmedMsg{Failed: failed}
}
