package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Static files fingerprinted for cache busting, relative to the static dir
const (
	AssetCSS     = "css/style.css"
	AssetAppJS   = "js/app.js"
	AssetFavicon = "images/favicon.svg"
)

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		assetVersions = make(map[string]string)
		for _, name := range []string{AssetCSS, AssetAppJS, AssetFavicon} {
			version := computeFileHash(filepath.Join(staticDir, name))
			if version == "" {
				version = "1"
			}
			assetVersions[name] = version
			log.Printf("[INFO] Asset version initialized: %s=%s", name, version)
		}
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash of a static asset, "1" if unknown.
// ctx is accepted for symmetry with the other render helpers; versions are global.
func GetAssetVersion(ctx context.Context, name string) string {
	if assetVersions == nil {
		return "1"
	}
	if version, ok := assetVersions[name]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static asset
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + GetAssetVersion(ctx, name)
}
