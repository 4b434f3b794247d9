package internal

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/goto/gitsim/client/local/model"
)

func ReadBatchSpec(fs afero.Fs, specPath string) (model.BatchSpec, error) {
	fileSpec, err := fs.Open(specPath)
	if err != nil {
		return model.BatchSpec{}, fmt.Errorf("error opening batch file[%s]: %w", specPath, err)
	}
	defer fileSpec.Close()

	var spec model.BatchSpec
	if err := yaml.NewDecoder(fileSpec).Decode(&spec); err != nil {
		return model.BatchSpec{}, fmt.Errorf("error decoding batch file under [%s]: %w", specPath, err)
	}

	if err := spec.Validate(); err != nil {
		return model.BatchSpec{}, fmt.Errorf("invalid batch file [%s]: %w", specPath, err)
	}
	return spec, nil
}
