package pmatch

import (
	"errors"
	"testing"
)

func TestMatch_FirstMatchWins(t *testing.T) {
	t.Parallel()
	res := Ok[int, string](5)

	out, err := Match(res,
		CaseOk[int, string, string](5, func(int) string { return "literal" }),
		CaseOk[int, string, string](When(func(n int) bool { return n > 0 }), func(int) string { return "predicate" }),
	)
	if err != nil {
		t.Fatalf("expected a match, got: %v", err)
	}
	if out != "literal" {
		t.Fatalf("expected the earlier case to win, got %q", out)
	}
}

func TestMatch_HandlerReceivesPayload(t *testing.T) {
	t.Parallel()
	res := Ok[int, string](21)

	out, err := Match(res,
		CaseOk[int, string, int](Any, func(n int) int { return n * 2 }),
	)
	if err != nil {
		t.Fatalf("expected a match, got: %v", err)
	}
	if out != 42 {
		t.Fatalf("expected doubled payload 42, got %d", out)
	}
}

func TestMatch_NonExhaustiveIsHardFailure(t *testing.T) {
	t.Parallel()
	res := Ok[int, string](10)

	out, err := Match(res,
		CaseOk[int, string, string](5, func(int) string { return "five" }),
	)
	if !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("expected ErrNonExhaustiveMatch, got: %v", err)
	}
	if out != "" {
		t.Fatalf("expected zero result on miss, got %q", out)
	}
}

func TestMatch_TagIsolation(t *testing.T) {
	t.Parallel()
	okRes := Ok[int, string](1)
	errRes := Err[int, string]("boom")

	errCaseCalled := false
	_, err := Match(okRes,
		CaseErr[int, string, string](Any, func(string) string {
			errCaseCalled = true
			return "err"
		}),
	)
	if !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("an Err case must never accept an Ok result, got: %v", err)
	}
	if errCaseCalled {
		t.Fatalf("Err handler must not run against an Ok result")
	}

	okCaseCalled := false
	_, err = Match(errRes,
		CaseOk[int, string, string](Any, func(int) string {
			okCaseCalled = true
			return "ok"
		}),
	)
	if !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("an Ok case must never accept an Err result, got: %v", err)
	}
	if okCaseCalled {
		t.Fatalf("Ok handler must not run against an Err result")
	}
}

func TestMatch_ErrPayloadPatterns(t *testing.T) {
	t.Parallel()
	res := Err[int, string]("timeout: upstream")

	out, err := Match(res,
		CaseErr[int, string, string](When(func(s string) bool { return len(s) > 5 }), func(s string) string { return "long:" + s }),
		CaseErr[int, string, string](Any, func(string) string { return "other" }),
	)
	if err != nil {
		t.Fatalf("expected a match, got: %v", err)
	}
	if out != "long:timeout: upstream" {
		t.Fatalf("unexpected handler output %q", out)
	}
}

func TestMatch_TrailingWildcardsAreExhaustive(t *testing.T) {
	t.Parallel()
	cases := []MatchCase[int, string, string]{
		CaseOk[int, string, string](99, func(int) string { return "ninety-nine" }),
		CaseOk[int, string, string](Any, func(int) string { return "ok" }),
		CaseErr[int, string, string](Any, func(string) string { return "err" }),
	}

	for _, res := range []Result[int, string]{Ok[int, string](1), Err[int, string]("x")} {
		if _, err := Match(res, cases...); err != nil {
			t.Fatalf("wildcard-terminated case list must be exhaustive, got: %v", err)
		}
	}
}

func TestMatch_StructuredPayload(t *testing.T) {
	t.Parallel()
	type user struct {
		Name string
		Age  int
	}
	res := Ok[user, error](user{Name: "Alice", Age: 30})

	out, err := Match(res,
		CaseOk[user, error, string](map[string]any{"Age": When(func(a int) bool { return a >= 18 })},
			func(u user) string { return "adult:" + u.Name }),
		CaseOk[user, error, string](Any, func(user) string { return "minor" }),
	)
	if err != nil {
		t.Fatalf("expected a match, got: %v", err)
	}
	if out != "adult:Alice" {
		t.Fatalf("unexpected dispatch %q", out)
	}
}

func TestMustMatch_PanicsOnMiss(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustMatch to panic on a non-exhaustive list")
		}
	}()
	MustMatch(Ok[int, string](10),
		CaseOk[int, string, string](5, func(int) string { return "five" }),
	)
}

func TestMustMatch_ReturnsHandlerValue(t *testing.T) {
	t.Parallel()
	out := MustMatch(Err[int, string]("boom"),
		CaseErr[int, string, string]("boom", func(s string) string { return s + "!" }),
	)
	if out != "boom!" {
		t.Fatalf("unexpected MustMatch output %q", out)
	}
}
