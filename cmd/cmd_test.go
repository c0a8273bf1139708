package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/epilist-cli/epilist/config"
	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestClosestKey(t *testing.T) {
	Convey("closestKey suggests the nearest registered key", t, func() {
		So(closestKey("search.debounce"), ShouldEqual, key.SearchDebounceMs)
		So(closestKey("api.ulr"), ShouldEqual, key.APIURL)
	})
}

func TestWithOutput(t *testing.T) {
	Convey("Given an output path", t, func() {
		filesystem.SetMemMapFs()

		Convey("The file gets the output and is closed afterwards", func() {
			var out io.Writer
			err := withOutput("/out.txt", func(w io.Writer) error {
				out = w
				_, err := io.WriteString(w, "S01E01\tPilot\n")
				return err
			})
			So(err, ShouldBeNil)

			data, err := afero.ReadFile(filesystem.API(), "/out.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "S01E01\tPilot\n")

			_, err = io.WriteString(out, "late")
			So(err, ShouldNotBeNil)
		})

		Convey("A write error is returned", func() {
			err := withOutput("/out.txt", func(io.Writer) error {
				return errors.New("source offline")
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "source offline")
		})
	})
}

func TestEnvNames(t *testing.T) {
	Convey("envNames lists every setting plus the config path", t, func() {
		names := envNames()
		So(names, ShouldHaveLength, len(config.Default)+1)
		So(names, ShouldContain, where.EnvConfigPath)
		So(names, ShouldContain, "EPILIST_SEARCH_DEBOUNCE_MS")

		for _, name := range names {
			So(strings.HasPrefix(name, "EPILIST_"), ShouldBeTrue)
		}
	})
}
