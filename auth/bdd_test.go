package auth

import (
	"context"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestRegisterThenLogin(t *testing.T) {
	convey.Convey("Given a new recruiter with username, email and password", t, func() {
		accounts := NewAccountRepository()
		svc := NewService(accounts, &eventsSpy{})
		ctx := context.Background()

		convey.Convey("When the recruiter registers", func() {
			id, err := svc.Register(ctx, registerRequest{Username: "jane", Email: "jane@b.co", Password: "password1", FullName: "Jane", UserType: TypeRecruiter})

			convey.So(err, convey.ShouldBeNil)
			convey.So(isValidID(string(id)), convey.ShouldBeTrue)

			convey.Convey("Then logging in with the same credentials returns the profile", func() {
				profile, err := svc.Login(ctx, loginRequest{Username: "jane", Password: "password1"})

				convey.So(err, convey.ShouldBeNil)
				convey.So(profile.ID, convey.ShouldEqual, id)
				convey.So(profile.Username, convey.ShouldEqual, "jane")
				convey.So(profile.Email, convey.ShouldEqual, "jane@b.co")
				convey.So(profile.FullName, convey.ShouldEqual, "Jane")
				convey.So(profile.UserType, convey.ShouldEqual, TypeRecruiter)
			})
		})
	})
}
