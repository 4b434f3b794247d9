package config

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// LoadClientConfig loads the client configuration from filePath. With an
// empty path the default gitsim.yaml in the working directory is used when
// present, otherwise defaults apply. GITSIM_ prefixed environment variables
// override file values.
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	return LoadClientConfigFs(afero.NewOsFs(), filePath)
}

func LoadClientConfigFs(fs afero.Fs, filePath string) (*ClientConfig, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType(DefaultFileExtension)
	v.SetEnvPrefix(DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", 1)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("workdir", DefaultWorkDir)
	v.SetDefault("diff.context_lines", DefaultContextLines)

	if filePath == EmptyPath {
		defaultPath := DefaultFilename + "." + DefaultFileExtension
		if found, err := afero.Exists(fs, defaultPath); err == nil && found {
			filePath = defaultPath
		}
	}

	if filePath != EmptyPath {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading client config [%s]: %w", filePath, err)
		}
	}

	var conf ClientConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("error decoding client config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	return &conf, nil
}
