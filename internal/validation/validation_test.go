package validation

import "testing"

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2026-04-01"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"2026/04/01", "tomorrow", "2026-13-01", ""} {
		if err := ValidateDate(bad); err == nil {
			t.Errorf("ValidateDate(%q) accepted", bad)
		}
	}
}

func TestValidateTime(t *testing.T) {
	if err := ValidateTime("23:59"); err != nil {
		t.Errorf("valid time rejected: %v", err)
	}
	for _, bad := range []string{"24:00", "9am", "12:60", ""} {
		if err := ValidateTime(bad); err == nil {
			t.Errorf("ValidateTime(%q) accepted", bad)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	for _, good := range []string{"30m", "90m", "1h", "1.5h", "全天"} {
		if err := ValidateDuration(good); err != nil {
			t.Errorf("ValidateDuration(%q) rejected: %v", good, err)
		}
	}
	for _, bad := range []string{"", "h", "xm", "1 hour", "ninety minutes"} {
		if err := ValidateDuration(bad); err == nil {
			t.Errorf("ValidateDuration(%q) accepted", bad)
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, good := range []string{"TWD", "JPY", "USD"} {
		if err := ValidateCurrency(good); err != nil {
			t.Errorf("ValidateCurrency(%q) rejected: %v", good, err)
		}
	}
	for _, bad := range []string{"EUR", "twd", ""} {
		if err := ValidateCurrency(bad); err == nil {
			t.Errorf("ValidateCurrency(%q) accepted", bad)
		}
	}
}

func TestValidateItemType(t *testing.T) {
	for _, good := range []string{"attraction", "food", "transport", "rest"} {
		if err := ValidateItemType(good); err != nil {
			t.Errorf("ValidateItemType(%q) rejected: %v", good, err)
		}
	}
	if err := ValidateItemType("shopping"); err == nil {
		t.Error("unknown item type accepted")
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(0); err != nil {
		t.Errorf("zero amount rejected: %v", err)
	}
	if err := ValidateAmount(199.5); err != nil {
		t.Errorf("positive amount rejected: %v", err)
	}
	if err := ValidateAmount(-1); err == nil {
		t.Error("negative amount accepted")
	}
}
