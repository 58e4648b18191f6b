package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// LoadPublications reads every *.md file in dir. The front matter carries
// the metadata; the body is the abstract. The slug defaults to the file
// name. Results are sorted by year, newest first, then title.
func LoadPublications(dir string) ([]Publication, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read publications %s: %w", dir, err)
	}

	var pubs []Publication
	for _, e := range entries {
		if e.IsDir() || !isPublicationFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		pub, err := ParsePublication(path)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, pub)
	}

	sort.SliceStable(pubs, func(i, j int) bool {
		if pubs[i].Year != pubs[j].Year {
			return pubs[i].Year > pubs[j].Year
		}
		return pubs[i].Title < pubs[j].Title
	})
	return pubs, nil
}

// isPublicationFile matches markdown files, any extension case.
func isPublicationFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

// ParsePublication reads one markdown publication file.
func ParsePublication(path string) (Publication, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Publication{}, fmt.Errorf("read publication %s: %w", path, err)
	}

	var pub Publication
	body, err := frontmatter.Parse(bytes.NewReader(data), &pub)
	if err != nil {
		return Publication{}, fmt.Errorf("front matter %s: %w", path, err)
	}
	if pub.Title == "" {
		return Publication{}, fmt.Errorf("publication %s: title is required", path)
	}
	if pub.Slug == "" {
		pub.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if abstract := strings.TrimSpace(string(body)); abstract != "" {
		pub.Abstract = abstract
	}
	return pub, nil
}
