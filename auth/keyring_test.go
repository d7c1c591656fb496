package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestKeyring(t *testing.T) {
	Convey("Keyring", t, func() {
		keyring.MockInit()

		Convey("Should round-trip a provider password", func() {
			So(SetPassword("Demo", "s3cret"), ShouldBeNil)

			password, err := GetPassword("Demo")
			So(err, ShouldBeNil)
			So(password, ShouldEqual, "s3cret")

			So(DeletePassword("Demo"), ShouldBeNil)
			_, err = GetPassword("Demo")
			So(err, ShouldNotBeNil)
		})

		Convey("Should miss for unknown providers", func() {
			_, err := GetPassword("Nobody")
			So(err, ShouldNotBeNil)
		})
	})
}
