package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptedSource struct {
	results []Location
	errs    []error
	calls   int
}

func (s *scriptedSource) Locate(ctx context.Context) (Location, error) {
	i := s.calls
	s.calls++
	return s.results[i], s.errs[i]
}

func TestProviderStartsEmpty(t *testing.T) {
	p := NewProvider(StaticSource{})
	snap := p.Snapshot()
	require.Nil(t, snap.Location)
	require.False(t, snap.Loading)
	require.Empty(t, snap.Error)
	require.Nil(t, p.Current())
}

func TestProviderRefreshStoresLocation(t *testing.T) {
	p := NewProvider(StaticSource{Location: Location{Lat: 28.6139, Lng: 77.209}})

	snap := p.Refresh(context.Background())
	require.NotNil(t, snap.Location)
	require.Equal(t, 28.6139, snap.Location.Lat)
	require.False(t, snap.Loading)
	require.False(t, snap.UpdatedAt.IsZero())

	cur := p.Current()
	require.NotNil(t, cur)
	cur.Lat = 0
	require.Equal(t, 28.6139, p.Current().Lat, "Current returns a copy")
}

func TestProviderErrorKeepsLastLocationAndRetryClearsIt(t *testing.T) {
	src := &scriptedSource{
		results: []Location{{Lat: 1, Lng: 2}, {}, {Lat: 3, Lng: 4}},
		errs:    []error{nil, errors.New("permission denied"), nil},
	}
	p := NewProvider(src)

	p.Refresh(context.Background())
	snap := p.Refresh(context.Background())
	require.Equal(t, "permission denied", snap.Error)
	require.Equal(t, 1.0, snap.Location.Lat)

	snap = p.Refresh(context.Background())
	require.Empty(t, snap.Error)
	require.Equal(t, 3.0, snap.Location.Lat)
	require.Equal(t, 3, src.calls)
}

func TestLocationStringsAreVerbatim(t *testing.T) {
	loc := Location{Lat: 51.5074, Lng: -0.1278}
	require.Equal(t, "51.5074", loc.LatString())
	require.Equal(t, "-0.1278", loc.LngString())
}

func TestIPSourceParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","lat":48.8566,"lon":2.3522}`))
	}))
	defer srv.Close()

	loc, err := NewIPSource(srv.URL).Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, Location{Lat: 48.8566, Lng: 2.3522}, loc)
}

func TestIPSourceReportsFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
	}))
	defer srv.Close()

	_, err := NewIPSource(srv.URL).Locate(context.Background())
	require.EqualError(t, err, "location unavailable: reserved range")
}

func TestIPSourceRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewIPSource(srv.URL).Locate(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestProviderOnChangeSeesLoading(t *testing.T) {
	p := NewProvider(StaticSource{Location: Location{Lat: 1, Lng: 1}})

	var seen []bool
	p.OnChange(func() { seen = append(seen, p.Snapshot().Loading) })
	p.Refresh(context.Background())

	require.Equal(t, []bool{true, false}, seen)
}
