package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/epilist-cli/epilist/constant"
	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/network"
	"github.com/epilist-cli/epilist/util"
	"github.com/epilist-cli/epilist/where"
	"github.com/metafates/gache"
)

// releasesURL points at the latest release of constant.Repository.
var releasesURL = fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)

var latestCache = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the "v" prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	if cached, expired, err := latestCache.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("latest release: unexpected status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("latest release: empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = latestCache.Set(latest)
	return latest, nil
}
