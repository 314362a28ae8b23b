package roles

import (
	"fmt"
	"io"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	golog "github.com/ipfs/go-log/v2"
)

var log = golog.Logger("go-tour")

// DefaultName is reported by a Person that does not provide its own name.
const DefaultName = "Unnamed"

// Person is the base capability: anything with a name.
type Person interface {
	Name() string
}

// Student is a Person attending a university.
type Student interface {
	Person
	University() string
}

// Programmer has a favourite language.
type Programmer interface {
	FavLanguage() string
}

// NamedProgrammer is a Programmer that can also be addressed by name.
type NamedProgrammer interface {
	Person
	Programmer
}

// CompSciStudent is both a Student and a Programmer, with a git account.
type CompSciStudent interface {
	Student
	Programmer
	GitUsername() string
}

// Unnamed provides the default Person behaviour when embedded.
type Unnamed struct{}

func (Unnamed) Name() string { return DefaultName }

// Stranger only has the default name.
type Stranger struct {
	Unnamed
}

// StreetPerson is a Person and nothing more.
type StreetPerson struct {
	name string
}

func NewStreetPerson(name string) *StreetPerson { return &StreetPerson{name: name} }

func (p *StreetPerson) Name() string { return p.name }

// RustProgrammer is a Person whose favourite language is Rust.
type RustProgrammer struct {
	name string
}

func NewRustProgrammer(name string) *RustProgrammer { return &RustProgrammer{name: name} }

func (p *RustProgrammer) Name() string        { return p.name }
func (p *RustProgrammer) FavLanguage() string { return "Rust" }

// CollegeStudent implements every capability.
type CollegeStudent struct {
	name string
}

func NewCollegeStudent(name string) *CollegeStudent { return &CollegeStudent{name: name} }

func (s *CollegeStudent) Name() string        { return s.name }
func (s *CollegeStudent) University() string  { return "Community college" }
func (s *CollegeStudent) FavLanguage() string { return "From Python to Rust" }

// GitUsername is the owner's name in lower case.
func (s *CollegeStudent) GitUsername() string {
	return cases.Lower(language.Und).String(s.name)
}

var (
	_ Person          = Stranger{}
	_ Person          = (*StreetPerson)(nil)
	_ NamedProgrammer = (*RustProgrammer)(nil)
	_ CompSciStudent  = (*CollegeStudent)(nil)
)

// SelectRole picks a role for seed:
// 0-3 Bob on the street, 4-6 Jake at college, 7-9 Don writing Rust,
// anything else someone on the street.
func SelectRole(seed uint8) Person {
	switch {
	case seed <= 3:
		return NewStreetPerson("Bob")
	case seed <= 6:
		return NewCollegeStudent("Jake")
	case seed <= 9:
		return NewRustProgrammer("Don")
	default:
		return NewStreetPerson("Someone")
	}
}

// SelectRoleByKey derives a seed from the low byte of key's xxh3 hash.
func SelectRoleByKey(key string) Person {
	seed := uint8(xxh3.HashString(key))
	log.Debugw("SelectRoleByKey", "key", key, "seed", seed)
	return SelectRole(seed)
}

// Capabilities lists the capabilities the runtime value of p supports.
func Capabilities(p Person) []string {
	capabilities := []string{"person"}
	if _, ok := p.(Student); ok {
		capabilities = append(capabilities, "student")
	}
	if _, ok := p.(Programmer); ok {
		capabilities = append(capabilities, "programmer")
	}
	if _, ok := p.(CompSciStudent); ok {
		capabilities = append(capabilities, "compsci-student")
	}
	return capabilities
}

func describe(name, university, language, username string) string {
	return fmt.Sprintf(
		"My name is %s and I attend %s. My favorite language is %s. My Git username is %s",
		name, university, language, username,
	)
}

// Describe formats a CompSciStudent through an interface value.
func Describe(s CompSciStudent) string {
	return describe(s.Name(), s.University(), s.FavLanguage(), s.GitUsername())
}

// DescribeStatic formats a CompSciStudent through a type parameter.
// Its output is identical to Describe for the same value.
func DescribeStatic[S CompSciStudent](s S) string {
	return describe(s.Name(), s.University(), s.FavLanguage(), s.GitUsername())
}

// Compare writes a line about the programmer to w, then returns the
// description of the student.
func Compare(w io.Writer, student CompSciStudent, programmer NamedProgrammer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s likes %s\n", programmer.Name(), programmer.FavLanguage()); err != nil {
		return "", fmt.Errorf("writing programmer line: %w", err)
	}
	return Describe(student), nil
}
