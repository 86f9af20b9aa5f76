package evidence

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Arielyuan/RepeatMatcher/internal/curation"
)

// resolveFoldImages scans dir for "<id>.png" files and attaches each to
// the matching record by filename stem. Stems with no known record are
// skipped: fold images alone are not evidence that a consensus exists.
func resolveFoldImages(dir string, store *curation.Store) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warnf("skipping fold images: %v", err)
		return
	}

	matched := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, err := store.Get(stem); err != nil {
			log.Debugf("fold image %s matches no consensus", entry.Name())
			continue
		}

		store.SetFoldImage(stem, filepath.Join(dir, entry.Name()))
		matched++
	}

	log.Debugf("matched %d fold images in %s", matched, dir)
}
