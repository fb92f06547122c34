// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/store/localstore"
	"github.com/dalemusser/reviewhub/internal/app/store/submissions"
)

// Deps holds back-end dependencies for the app: the document store and the
// domain stores layered on top of it.
type Deps struct {
	Local       *localstore.Store
	Directory   *directory.Store
	Submissions *submissions.Store
}
