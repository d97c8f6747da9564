package commands

import (
	"strings"

	"github.com/calebcase/oops"
	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calebcase/bytesize"
	"github.com/calebcase/bytesize/locale"
	"github.com/calebcase/bytesize/unit"
)

const envPrefix = "BYTESIZE"

// Config is the resolved configuration of a command. Values come from, in
// order of precedence, flags, BYTESIZE_* environment variables, the YAML
// config file and the flag defaults.
type Config struct {
	LogLevel string        `mapstructure:"log-level"`
	Locale   string        `mapstructure:"locale"`
	Places   int           `mapstructure:"places"`
	MinUnit  string        `mapstructure:"min-unit"`
	Dir      string        `mapstructure:"dir"`
	To       bytesize.Size `mapstructure:"to"`
}

type state struct {
	v *viper.Viper

	cfg     Config
	loc     locale.Locale
	minUnit unit.Unit
}

func newState() *state {
	return &state{
		v:   viper.New(),
		loc: locale.C,
	}
}

// load resolves the configuration for cmd. It must run after flag parsing.
func (st *state) load(cmd *cobra.Command) (err error) {
	v := st.v

	err = v.BindPFlags(cmd.Flags())
	if err != nil {
		return oops.Trace(err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		err = v.ReadInConfig()
		if err != nil {
			return oops.Trace(err)
		}
	}

	err = v.Unmarshal(&st.cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	if err != nil {
		return oops.Trace(err)
	}

	level, err := log.ParseLevel(st.cfg.LogLevel)
	if err != nil {
		return oops.Trace(err)
	}
	log.SetLevel(level)

	if st.cfg.Locale != "" {
		st.loc, err = locale.LoadFile(st.cfg.Locale)
		if err != nil {
			return err
		}
	}

	u, ok := st.loc.LookupUnit(st.cfg.MinUnit)
	if !ok {
		return bytesize.ErrInvalidSpec.New("unknown unit %q", st.cfg.MinUnit)
	}
	st.minUnit = u

	log.WithFields(log.Fields{
		"config":   v.ConfigFileUsed(),
		"locale":   st.loc.Name,
		"places":   st.cfg.Places,
		"min-unit": st.minUnit,
	}).Debug("configuration loaded")

	return nil
}

// parse reads a size in the configured locale.
func (st *state) parse(text string) (bytesize.Size, error) {
	s, err := bytesize.ParseLocale(text, st.loc)
	if err != nil {
		return bytesize.Size{}, err
	}

	log.WithFields(log.Fields{
		"input": text,
		"bytes": s.BytesString(),
	}).Trace("parsed size")

	return s, nil
}

// human formats s with the configured minimum unit, places and locale.
func (st *state) human(s bytesize.Size, places int) string {
	return s.HumanReadable(st.minUnit, places, &st.loc)
}
