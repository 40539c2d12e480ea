// Package ianadist downloads zone tables distributed by IANA.
//
// Releases are downloaded from the [IANA data server]. Clients are advised
// to store the [ETags] returned in this package and pass them to subsequent
// calls to avoid downloading the same data multiple times.
//
// [ETags]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/ETag
// [IANA data server]: https://www.iana.org/time-zones
package ianadist

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Release holds the parts of an IANA time zone database release needed to
// refresh a zone table: the version and the raw tab files. Parsing is left
// to the caller (see tzdb.ParseZoneTab).
type Release struct {
	// Version is the version of the IANA time zone database.
	// For example, "2021a".
	Version string
	// ZoneTab is the content of the zone1970.tab file: zone names and the
	// countries overlapping them.
	ZoneTab []byte
	// CountryTab is the content of the iso3166.tab file: country codes and
	// their English names.
	CountryTab []byte
}

// DefaultClient is the default client to download the IANA time zone database.
// It is ready to use and is used by the top-level function [Latest]
// in this package.
var DefaultClient = &Client{}

// Client is a client to download the IANA time zone database.
// The zero value is ready to use.
type Client struct {
	// HTTPClient is the http.Client used to download the IANA time zone database.
	// If HTTPClient is nil, http.DefaultClient is used.
	//
	// This variable is useful to prevent network calls during tests by using a
	// http.Client with a fake http.RoundTripper that returns canned responses.
	// You can also use it to set timeouts, control redirects, etc.
	// However, timeouts are also controlled by the context passed to the
	// Latest method.
	HTTPClient *http.Client
}

// httpClient returns the http.Client used by the client.
// If HTTPClient is nil, http.DefaultClient is returned.
func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

const (
	// baseURL is the base URL for time zones on the IANA data server.
	baseURL = "https://data.iana.org/time-zones/"
	// latestDataPath is the path to the latest IANA time zone database
	// relative to the baseURL.
	latestDataPath = "tzdata-latest.tar.gz"
	// zoneTabFilename is the name of the zone table file in the archive.
	zoneTabFilename = "zone1970.tab"
	// countryTabFilename is the name of the country table file in the archive.
	countryTabFilename = "iso3166.tab"
	// versionFilename is the name of the version file in the archive.
	versionFilename = "version"
	// emptyEtag is the empty etag value.
	emptyEtag = ""
)

// ReadArchive extracts the zone tables from an IANA release archive.
//
// The io.Reader must contain a gzip-compressed tar archive as found at
// https://data.iana.org/time-zones/releases/.
func ReadArchive(r io.Reader) (*Release, error) {
	gunzip, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("read gzip: %w", err)
	}
	tr := tar.NewReader(gunzip)

	var result Release
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch header.Name {
		case zoneTabFilename:
			result.ZoneTab, err = io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("read zone table: %w", err)
			}
		case countryTabFilename:
			result.CountryTab, err = io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("read country table: %w", err)
			}
		case versionFilename:
			versionBytes, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("read version file: %w", err)
			}
			if len(versionBytes) == 0 {
				return nil, fmt.Errorf("empty version file")
			}
			result.Version = string(versionBytes)
		}
	}

	if result.ZoneTab == nil {
		return nil, fmt.Errorf("no zone table found")
	}
	if result.Version == "" {
		return nil, fmt.Errorf("no version found")
	}

	return &result, nil
}

// Latest downloads the latest IANA time zone database and extracts its zone
// tables.
//
// If the server responds with a 304 Not Modified status code, the returned
// ETag is the same as the input and the returned Release and error are
// both nil.
//
// If an error is returned, the returned ETag is empty and the returned
// Release is nil.
//
// Latest is a wrapper around DefaultClient.Latest.
func Latest(ctx context.Context, etag string) (*Release, string, error) {
	return DefaultClient.Latest(ctx, etag)
}

// Latest downloads the latest IANA time zone database and extracts its zone
// tables.
//
// If the server responds with a 304 Not Modified status code, the returned
// ETag is the same as the input and the returned Release and error are
// both nil.
//
// If an error is returned, the returned ETag is empty and the returned
// Release is nil.
func (c *Client) Latest(ctx context.Context, etag string) (*Release, string, error) {
	r, newEtag, err := c.download(ctx, latestDataPath, etag)
	if err != nil {
		return nil, emptyEtag, err
	}
	if r == nil {
		return nil, etag, nil // Not modified.
	}
	defer func() {
		// Drain and close the response body to ensure the
		// connection can be reused.
		_, _ = io.ReadAll(r)
		_ = r.Close()
	}()

	release, err := ReadArchive(r)
	if err != nil {
		return nil, emptyEtag, err
	}

	return release, newEtag, nil
}

// download fetches the resource at the given path from the IANA time zone
// data server, with caching using the given ETag.
//
// If the server responds with a 304 Not Modified status code, the returned
// io.ReadCloser and error are both nil, and the etag is the same as the
// input. Otherwise the returned io.ReadCloser is a [http.Response.Body] and
// needs to be read fully and closed by the caller to prevent resource
// leaks.
//
// An error is returned for HTTP status codes other than 200 OK and 304 Not
// Modified.
func (c *Client) download(ctx context.Context, path, etag string) (io.ReadCloser, string, error) {
	u, err := url.JoinPath(baseURL, path)
	if err != nil {
		return nil, emptyEtag, fmt.Errorf("join URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, emptyEtag, fmt.Errorf("create request for %q: %w", u, err)
	}

	if etag != emptyEtag {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, emptyEtag, fmt.Errorf("GET %q: %w", u, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Drain and close the response body to reuse the connection.
		// In theory, the server will not send a body with all status codes,
		// but draining before closing the body is the safe thing to do.
		_, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		// Not modified response means the resource has not changed
		// based on the ETag we sent. This is fine.
		if resp.StatusCode == http.StatusNotModified {
			return nil, etag, nil
		}

		return nil, emptyEtag, fmt.Errorf("response for %q: unexpected status: %s", u, resp.Status)
	}

	// Caller must take care of closing the response body.
	return resp.Body, resp.Header.Get("etag"), nil
}
