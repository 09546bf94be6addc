package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// settings mirrors the values that have a range, named by their config keys.
type settings struct {
	SlotsNames      []string `key:"slots.names" validate:"min=1,dive,required"`
	SlotsKeys       []string `key:"slots.keys" validate:"min=1,dive,required"`
	PollIntervalMs  int      `key:"poll.interval_ms" validate:"min=10"`
	PollMaxAttempts int      `key:"poll.max_attempts" validate:"min=0"`
	PlayerBinary    string   `key:"player.binary" validate:"required"`
	SliderStep      int      `key:"slider.step" validate:"min=1"`
	SliderCoarse    int      `key:"slider.coarse_step" validate:"min=1"`
	TUIFlashMs      int      `key:"tui.flash_ms" validate:"min=0,max=5000"`
	IconsVariant    string   `key:"icons.variant" validate:"oneof=emoji nerd plain squares"`
	LogsLevel       string   `key:"logs.level" validate:"oneof=panic fatal error warn warning info debug trace"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("key")
	})
	return v
}

func current() settings {
	return settings{
		SlotsNames:      viper.GetStringSlice(key.SlotsNames),
		SlotsKeys:       viper.GetStringSlice(key.SlotsKeys),
		PollIntervalMs:  viper.GetInt(key.PollIntervalMs),
		PollMaxAttempts: viper.GetInt(key.PollMaxAttempts),
		PlayerBinary:    viper.GetString(key.PlayerBinary),
		SliderStep:      viper.GetInt(key.SliderStep),
		SliderCoarse:    viper.GetInt(key.SliderCoarseStep),
		TUIFlashMs:      viper.GetInt(key.TUIFlashMs),
		IconsVariant:    viper.GetString(key.IconsVariant),
		LogsLevel:       viper.GetString(key.LogsLevel),
	}
}

// Validate checks the resolved configuration and reports every out of range value.
func Validate() error {
	err := validate.Struct(current())
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
