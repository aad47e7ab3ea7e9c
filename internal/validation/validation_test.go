package validation

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.cd",
		"alice@example.com",
		"first.last+tag@sub.domain.org",
		"USER_99%x@host-name.io",
	}
	for _, s := range valid {
		if !Email(s) {
			t.Errorf("Email(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"a@b",
		"a.com",
		"@example.com",
		"a@.com",
		"a@b.c",
		"a b@example.com",
	}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("Email(%q) = true, want false", s)
		}
	}
}

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		pw   string
		want bool
	}{
		{"Passw0rd", true},
		{"Another1pass", true},
		{"short1A", false},       // 7 chars
		{"alllowercase1", false}, // no uppercase
		{"ALLUPPERCASE1", false}, // no lowercase
		{"NoDigitsHere", false},
		{"", false},
		{"A1b2C3d4", true},
	}
	for _, c := range cases {
		if got := PasswordStrength(c.pw); got != c.want {
			t.Errorf("PasswordStrength(%q) = %v, want %v", c.pw, got, c.want)
		}
	}
}

func TestUsernamePartial(t *testing.T) {
	for _, s := range []string{"", "a", "alice_1", "X9"} {
		if !UsernamePartial(s) {
			t.Errorf("UsernamePartial(%q) = false, want true", s)
		}
	}
	for _, s := range []string{" ", "-", "alice!", "a b"} {
		if UsernamePartial(s) {
			t.Errorf("UsernamePartial(%q) = true, want false", s)
		}
	}
}

func TestNamePartial(t *testing.T) {
	for _, s := range []string{"", "Alice", "Mary Jane"} {
		if !NamePartial(s) {
			t.Errorf("NamePartial(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"Al1ce", "O'Brien", "x@"} {
		if NamePartial(s) {
			t.Errorf("NamePartial(%q) = true, want false", s)
		}
	}
}

func TestSignupOrderAndMessages(t *testing.T) {
	base := SignupForm{
		Username:        "alice1",
		Email:           "alice@example.com",
		FirstName:       "Alice",
		LastName:        "Smith",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*SignupForm)
		message string
	}{
		{
			name:    "short username",
			mutate:  func(f *SignupForm) { f.Username = "al" },
			message: "Username must be at least 3 characters",
		},
		{
			name:    "bad email",
			mutate:  func(f *SignupForm) { f.Email = "a@b" },
			message: "Invalid email format",
		},
		{
			name:    "short first name",
			mutate:  func(f *SignupForm) { f.FirstName = "A" },
			message: "First name is required and must be at least 2 characters",
		},
		{
			name:    "short last name",
			mutate:  func(f *SignupForm) { f.LastName = "S" },
			message: "Last name is required and must be at least 2 characters",
		},
		{
			name:    "weak password",
			mutate:  func(f *SignupForm) { f.Password = "short1"; f.ConfirmPassword = "short1" },
			message: "Password must be at least 8 characters, include uppercase, lowercase, and number",
		},
		{
			name:    "mismatched confirmation",
			mutate:  func(f *SignupForm) { f.ConfirmPassword = "Passw0rd!" },
			message: "Passwords do not match",
		},
		{
			// Username failure must win even when later fields are also bad.
			name: "short-circuits at first failure",
			mutate: func(f *SignupForm) {
				f.Username = ""
				f.Email = "nope"
				f.Password = "x"
			},
			message: "Username must be at least 3 characters",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := base
			c.mutate(&f)
			err := f.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if err.Error() != c.message {
				t.Fatalf("message = %q, want %q", err.Error(), c.message)
			}
		})
	}
}
