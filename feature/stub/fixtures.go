package stub

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadFixtures reads a YAML file mapping REST paths to fixtures and installs
// them on the service. Routes absent from the file keep their current fixture.
//
//	/_api/rest/v1/storage/create-bucket:
//	  status: 409
//	  errors:
//	    code: duplicate_name
//	    message: bucket already exists
//	/_api/rest/v1/storage/stats:
//	  data: {filesCount: 2, totalSize: 2048}
func (s *Service) LoadFixtures(file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read fixtures: %w", err)
	}

	var fixtures map[string]Fixture
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("failed to parse fixtures %s: %w", file, err)
	}

	for path, f := range fixtures {
		s.SetFixture(path, f)
	}
	s.logger.Info("Loaded stub fixtures", zap.String("file", file), zap.Int("routes", len(fixtures)))
	return nil
}
