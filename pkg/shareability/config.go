package shareability

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/util"
	"github.com/spf13/viper"
)

type Config struct {
	VehicleCapacity      int     `validate:"min=1"`
	MaxEdgesRV           int     `validate:"min=0"`
	MaxEdgesRR           int     `validate:"min=0"`
	PDStrategy           string  `validate:"oneof=pd_insertion pd_permutation"`
	Workers              int     `validate:"min=1"` // per phase: RV and RR edges each run this many workers
	CandidateRadiusKm    float64 `validate:"min=0"`
	PermutationTablePath string
}

func DefaultConfig() Config {
	return Config{
		VehicleCapacity: pkg.DEFAULT_VEHICLE_CAPACITY,
		MaxEdgesRV:      pkg.DEFAULT_MAX_EDGES_RV,
		MaxEdgesRR:      pkg.DEFAULT_MAX_EDGES_RR,
		PDStrategy:      pkg.PD_INSERTION,
		Workers:         pkg.DEFAULT_WORKERS,
	}
}

// NewConfigFromViper reads the builder options from the global viper instance.
func NewConfigFromViper() Config {
	viper.SetDefault("VEHICLE_CAPACITY", pkg.DEFAULT_VEHICLE_CAPACITY)
	viper.SetDefault("MAX_EDGES_RV", pkg.DEFAULT_MAX_EDGES_RV)
	viper.SetDefault("MAX_EDGES_RR", pkg.DEFAULT_MAX_EDGES_RR)
	viper.SetDefault("PD_STRATEGY", pkg.PD_INSERTION)
	viper.SetDefault("WORKERS", pkg.DEFAULT_WORKERS)
	viper.SetDefault("CANDIDATE_RADIUS_KM", 0.0)
	viper.SetDefault("PERMUTATION_TABLE", "")

	return Config{
		VehicleCapacity:      viper.GetInt("VEHICLE_CAPACITY"),
		MaxEdgesRV:           viper.GetInt("MAX_EDGES_RV"),
		MaxEdgesRR:           viper.GetInt("MAX_EDGES_RR"),
		PDStrategy:           viper.GetString("PD_STRATEGY"),
		Workers:              viper.GetInt("WORKERS"),
		CandidateRadiusKm:    viper.GetFloat64("CANDIDATE_RADIUS_KM"),
		PermutationTablePath: viper.GetString("PERMUTATION_TABLE"),
	}
}

// Validate returns a util.ErrBadParamInput error listing every invalid option.
func (c Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	return util.WrapErrorf(nil, util.ErrBadParamInput, "invalid configuration: %s", strings.Join(vv, "; "))
}

func translateError(err error, trans ut.Translator) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	res := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		res = append(res, e.Translate(trans))
	}
	return res
}
