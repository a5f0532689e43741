package seed

import (
	"fmt"
	"strings"
)

// Seed ids are deterministic so the same fixture always lands under
// the same id across devices and reinstalls.

func userID(i int) string { return fmt.Sprintf("u_staff_%d", i) }

func personStaffID(i int) string { return fmt.Sprintf("p_staff_%d", i) }

func personStudentID(room, i int) string { return fmt.Sprintf("p_student_%d_%d", room, i) }

func roomID(num int) string { return fmt.Sprintf("r%d", num) }

func joinNames(names []string) string { return strings.Join(names, ", ") }
