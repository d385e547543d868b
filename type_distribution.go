package montecarlo

import "fmt"

// Distribution selects the sampling model for monthly returns.
//
// The zero value is the Normal distribution. Fat-tailed variants carry
// the Student's-t degrees of freedom; lower values produce heavier
// tails. The degrees of freedom must stay above 2 so that the variance
// correction applied by the generator is defined.
type Distribution struct {
	nu float64 // 0 for Normal, otherwise Student's-t degrees of freedom
}

var (
	// Normal draws returns from a Normal distribution, the traditional
	// assumption that underestimates extreme months.
	Normal = Distribution{}
	// StandardTails draws returns from a Student's-t distribution with 5
	// degrees of freedom, moderately fat tails.
	StandardTails = Distribution{nu: 5}
	// ExtremeTails draws returns from a Student's-t distribution with 3
	// degrees of freedom, for severe tail events.
	ExtremeTails = Distribution{nu: 3}
)

// FatTailed returns a Student's-t distribution with the given degrees
// of freedom.
func FatTailed(degreesOfFreedom float64) (Distribution, error) {
	if degreesOfFreedom <= 2 {
		return Distribution{}, fmt.Errorf("%w: degrees of freedom must be > 2, got %g", ErrConfig, degreesOfFreedom)
	}
	return Distribution{nu: degreesOfFreedom}, nil
}

// FatTails reports whether d is a fat-tailed (Student's-t) distribution.
func (d Distribution) FatTails() bool { return d.nu != 0 }

// DegreesOfFreedom returns the Student's-t degrees of freedom, or 0 for
// the Normal distribution.
func (d Distribution) DegreesOfFreedom() float64 { return d.nu }

func (d Distribution) String() string {
	switch d {
	case Normal:
		return "normal"
	case StandardTails:
		return "standard"
	case ExtremeTails:
		return "extreme"
	default:
		return fmt.Sprintf("fat-tailed(%g)", d.nu)
	}
}

// ParseDistribution parses a string into a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "standard":
		return StandardTails, nil
	case "extreme":
		return ExtremeTails, nil
	default:
		return Distribution{}, fmt.Errorf("%w: unknown distribution %q (want normal, standard or extreme)", ErrConfig, s)
	}
}
