package hollandsevelden

import (
	"context"
	_ "embed"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// fixtureData is a bundled competition payload used when the live API is
// unavailable or test-data mode is on.
//
//go:embed fixture_data.json
var fixtureData []byte

// FixtureSource serves the bundled competition payload. It satisfies the
// same contract as Client.FetchCompetitionData but never touches the
// network.
type FixtureSource struct{}

func (FixtureSource) FetchCompetitionData(_ context.Context) (map[string]any, error) {
	return FixtureData()
}

// FixtureData decodes the bundled payload.
func FixtureData() (map[string]any, error) {
	var payload map[string]any
	if err := sonic.Unmarshal(fixtureData, &payload); err != nil {
		return nil, crerr.Wrap(err, "decode bundled fixture payload")
	}
	return unwrapCompetition(payload), nil
}
