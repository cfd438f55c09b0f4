package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
)

// LoadConfig loads advent.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := validate.Struct(y); err != nil {
		return cfg, invalidConfig(path, describe(err))
	}

	// Apply parsed values on top of defaults.
	if y.Advent.Paths.InputsDir != "" {
		cfg.Paths.InputsDir = y.Advent.Paths.InputsDir
	}
	if y.Advent.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Advent.Paths.RunsDir
	}
	if y.Advent.SaveRuns != nil {
		cfg.SaveRuns = *y.Advent.SaveRuns
	}
	for day, name := range y.Advent.Inputs {
		cfg.Inputs[day] = name
	}
	for i, a := range y.Advent.Answers {
		k := domain.PuzzleKey{Day: a.Day, Part: a.Part}
		if _, dup := cfg.Answers[k]; dup {
			return cfg, invalidConfig(path, fmt.Sprintf("field advent.answers[%d]: duplicate answer for %s", i, k))
		}
		cfg.Answers[k] = *a.Want
	}

	return cfg, nil
}

type yamlConfig struct {
	Advent struct {
		Paths struct {
			InputsDir string `yaml:"inputs_dir"`
			RunsDir   string `yaml:"runs_dir"`
		} `yaml:"paths"`

		SaveRuns *bool `yaml:"save_runs"`

		Inputs map[int]string `yaml:"inputs" validate:"dive,keys,min=1,max=25,endkeys,required"`

		Answers []yamlAnswer `yaml:"answers" validate:"dive"`
	} `yaml:"advent"`
}

type yamlAnswer struct {
	Day  int  `yaml:"day" validate:"min=1,max=25"`
	Part int  `yaml:"part" validate:"oneof=1 2"`
	Want *int `yaml:"want" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml field names instead of Go ones.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("field %s: failed %s", field, rule))
	}
	return strings.Join(msgs, "; ")
}

func invalidConfig(path, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
