package ianadist

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"testing"
)

// roundTripperFunc is a function that implements the http.RoundTripper interface.
// Useful to fake a http.Client with fakeClient.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (fn roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return fn(req)
}

func fakeClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn}
}

const (
	testVersion = "2024b"
	testZoneTab = "# zone table\nGB\t+513030-0000731\tEurope/London\n"
	testISOTab  = "# country codes\nGB\tBritain (UK)\n"
)

// buildArchive assembles a minimal release archive in memory.
func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		err := tw.WriteHeader(&tar.Header{Name: name, Mode: 0644, Size: int64(len(content))})
		if err != nil {
			t.Fatalf("write header %q: %v", name, err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("write %q: %v", name, err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func testArchive(t *testing.T) []byte {
	return buildArchive(t, map[string]string{
		"version":      testVersion,
		"zone1970.tab": testZoneTab,
		"iso3166.tab":  testISOTab,
		"europe":       "# tzdb data for Europe and environs\n...",
	})
}

func checkRelease(t *testing.T, release *Release) {
	t.Helper()
	if release.Version != testVersion {
		t.Errorf("Version = %q, want %q", release.Version, testVersion)
	}
	if string(release.ZoneTab) != testZoneTab {
		t.Errorf("ZoneTab = %q, want %q", release.ZoneTab, testZoneTab)
	}
	if string(release.CountryTab) != testISOTab {
		t.Errorf("CountryTab = %q, want %q", release.CountryTab, testISOTab)
	}
}

func TestLatest(t *testing.T) {
	const (
		testEtag  = "test-etag"
		emptyEtag = ""
	)
	httpClient := fakeClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodGet {
			t.Errorf("unexpected method %q", req.Method)
		}
		if req.URL.String() != "https://data.iana.org/time-zones/tzdata-latest.tar.gz" {
			t.Errorf("unexpected URL %q", req.URL)
		}

		if req.Header.Get("If-None-Match") == testEtag {
			return &http.Response{
				StatusCode: http.StatusNotModified,
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil
		}

		resp := &http.Response{
			Body:       io.NopCloser(bytes.NewReader(testArchive(t))),
			StatusCode: http.StatusOK,
		}
		resp.Header = make(http.Header)
		resp.Header.Set("etag", testEtag)
		return resp, nil
	})

	client := &Client{HTTPClient: httpClient}
	ctx := context.Background()

	// Test that Latest returns the latest zone tables.
	release, gotEtag, err := client.Latest(ctx, emptyEtag)
	if err != nil {
		t.Errorf("Latest(%v) returned unexpected error: %v", emptyEtag, err)
	}
	if gotEtag != testEtag {
		t.Errorf("Latest(%v) returned ETag %q, want %q", emptyEtag, gotEtag, testEtag)
	}
	checkRelease(t, release)

	// Test that Latest returns no release when the ETag is up-to-date.
	release, newEtag, err := client.Latest(ctx, gotEtag)
	if err != nil {
		t.Errorf("Latest(%q) returned unexpected error: %v", gotEtag, err)
	}
	if newEtag != testEtag {
		t.Errorf("Latest(%q) returned ETag %q, want %q", gotEtag, newEtag, testEtag)
	}
	if release != nil {
		t.Errorf("Latest(%q) returned non-nil release", gotEtag)
	}
}

func TestReadArchive(t *testing.T) {
	release, err := ReadArchive(bytes.NewReader(testArchive(t)))
	if err != nil {
		t.Fatalf("ReadArchive(...): unexpected non-nil error: %v", err)
	}
	checkRelease(t, release)
}

func TestReadArchiveMissingZoneTab(t *testing.T) {
	data := buildArchive(t, map[string]string{"version": testVersion})
	if _, err := ReadArchive(bytes.NewReader(data)); err == nil {
		t.Error("ReadArchive(...): expected error for archive without zone table")
	}
}

func TestReadArchiveMissingVersion(t *testing.T) {
	data := buildArchive(t, map[string]string{"zone1970.tab": testZoneTab})
	if _, err := ReadArchive(bytes.NewReader(data)); err == nil {
		t.Error("ReadArchive(...): expected error for archive without version")
	}
}
