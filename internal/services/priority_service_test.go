package services

import (
	"errors"
	"testing"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/shopspring/decimal"
)

type priorityFixture struct {
	service    *PriorityService
	access     *AccessService
	priorities *fakePriorityRepo
}

func newPriorityFixture(incomes map[uint]decimal.Decimal) priorityFixture {
	access, _ := newAccessFixture()
	priorities := newFakePriorityRepo()
	categories := newFakeCategoryFinder(models.Category{ID: 20, DashboardID: 10, Name: "groceries"})
	service := NewPriorityService(priorities, categories, newFakeIncomeSource(incomes), access)
	return priorityFixture{service: service, access: access, priorities: priorities}
}

func mustGrant(t *testing.T, access *AccessService, userID uint, dashboardID uint, level string) {
	t.Helper()
	if err := access.GrantAccess(userID, dashboardID, level); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
}

func mustAssignRole(t *testing.T, access *AccessService, userID uint, dashboardID uint, role string) {
	t.Helper()
	if err := access.AssignRole(userID, dashboardID, role); err != nil {
		t.Fatalf("assign role failed: %v", err)
	}
}

func TestCalculateCategoryPriorityRequiresViewer(t *testing.T) {
	fixture := newPriorityFixture(nil)

	if _, err := fixture.service.CalculateCategoryPriority(3, 20, 10); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("outsider calculating: got %v, want ErrAccessDenied", err)
	}
}

func TestCalculateCategoryPriorityNoRatings(t *testing.T) {
	fixture := newPriorityFixture(nil)
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)

	result, err := fixture.service.CalculateCategoryPriority(1, 20, 10)
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if result.StringFixed(2) != "0.00" {
		t.Fatalf("result = %s, want 0.00", result)
	}
}

func TestCalculateCategoryPriorityWeightedAverage(t *testing.T) {
	// Three members with priorities 5, 3, 4; roles employee (0.7),
	// student (0.3), retiree (0.5); incomes 1, 2, 3 of a total 6.
	// The blended weighted average rounds half-up to 4.09.
	fixture := newPriorityFixture(map[uint]decimal.Decimal{
		1: decimal.NewFromInt(1),
		2: decimal.NewFromInt(2),
		3: decimal.NewFromInt(3),
	})
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)
	mustGrant(t, fixture.access, 2, 10, models.AccessViewer)
	mustGrant(t, fixture.access, 3, 10, models.AccessViewer)
	mustAssignRole(t, fixture.access, 1, 10, models.RoleEmployee)
	mustAssignRole(t, fixture.access, 2, 10, models.RoleStudent)
	mustAssignRole(t, fixture.access, 3, 10, models.RoleRetiree)

	for userID, priority := range map[uint]int{1: 5, 2: 3, 3: 4} {
		if _, err := fixture.service.SetCategoryPriority(userID, 20, 10, priority); err != nil {
			t.Fatalf("set priority for user %d failed: %v", userID, err)
		}
	}

	result, err := fixture.service.CalculateCategoryPriority(1, 20, 10)
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if result.StringFixed(2) != "4.09" {
		t.Fatalf("result = %s, want 4.09", result)
	}
}

func TestCalculateCategoryPriorityZeroIncome(t *testing.T) {
	// With no income anywhere the income share contributes zero and the
	// average reduces to the role-weighted mean of the priorities.
	fixture := newPriorityFixture(nil)
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)
	mustGrant(t, fixture.access, 2, 10, models.AccessViewer)
	mustAssignRole(t, fixture.access, 1, 10, models.RoleEmployee)
	mustAssignRole(t, fixture.access, 2, 10, models.RoleChild)

	if _, err := fixture.service.SetCategoryPriority(1, 20, 10, 4); err != nil {
		t.Fatalf("set priority failed: %v", err)
	}
	if _, err := fixture.service.SetCategoryPriority(2, 20, 10, 2); err != nil {
		t.Fatalf("set priority failed: %v", err)
	}

	// weights 0.35 and 0.10: (4*0.35 + 2*0.10) / 0.45 = 3.5555... -> 3.56
	result, err := fixture.service.CalculateCategoryPriority(1, 20, 10)
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if result.StringFixed(2) != "3.56" {
		t.Fatalf("result = %s, want 3.56", result)
	}
}

func TestCalculateCategoryPriorityMissingRoleIsFatal(t *testing.T) {
	fixture := newPriorityFixture(nil)
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)
	mustGrant(t, fixture.access, 2, 10, models.AccessViewer)
	mustAssignRole(t, fixture.access, 1, 10, models.RoleEmployee)
	// user 2 rates the category but never gets a role

	if _, err := fixture.service.SetCategoryPriority(1, 20, 10, 5); err != nil {
		t.Fatalf("set priority failed: %v", err)
	}
	if _, err := fixture.service.SetCategoryPriority(2, 20, 10, 3); err != nil {
		t.Fatalf("set priority failed: %v", err)
	}

	if _, err := fixture.service.CalculateCategoryPriority(1, 20, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing role: got %v, want fatal ErrNotFound", err)
	}
}

func TestCalculateCategoryPriorityUnknownCategory(t *testing.T) {
	fixture := newPriorityFixture(nil)
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)

	if _, err := fixture.service.CalculateCategoryPriority(1, 99, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown category: got %v, want ErrNotFound", err)
	}
}

func TestSetCategoryPriorityDuplicateTriple(t *testing.T) {
	fixture := newPriorityFixture(nil)
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)

	if _, err := fixture.service.SetCategoryPriority(1, 20, 10, 5); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if _, err := fixture.service.SetCategoryPriority(1, 20, 10, 2); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("duplicate set: got %v, want ErrAlreadyExists", err)
	}
}

func TestUpdateCategoryPriorityMissingTriple(t *testing.T) {
	fixture := newPriorityFixture(nil)
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)

	if _, err := fixture.service.UpdateCategoryPriority(1, 20, 10, 4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update without row: got %v, want ErrNotFound", err)
	}

	if _, err := fixture.service.SetCategoryPriority(1, 20, 10, 5); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	updated, err := fixture.service.UpdateCategoryPriority(1, 20, 10, 4)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Priority != 4 {
		t.Fatalf("priority = %d, want 4", updated.Priority)
	}
}

func TestSetCategoryPriorityRejectsNonPositive(t *testing.T) {
	fixture := newPriorityFixture(nil)
	mustGrant(t, fixture.access, 1, 10, models.AccessOwner)

	if _, err := fixture.service.SetCategoryPriority(1, 20, 10, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero priority: got %v, want ErrInvalidArgument", err)
	}
}

func TestRoleWeightTableCoversCatalog(t *testing.T) {
	roles := []string{
		models.RoleEntrepreneur,
		models.RoleEmployee,
		models.RoleRetiree,
		models.RoleHousemaker,
		models.RoleStudent,
		models.RoleChild,
		models.RoleNone,
	}
	wantWeights := []string{"0.8", "0.7", "0.5", "0.4", "0.3", "0.2", "0.1"}

	for index, role := range roles {
		weight, ok := RoleWeight(role)
		if !ok {
			t.Fatalf("role %q missing from weight table", role)
		}
		if weight.String() != wantWeights[index] {
			t.Fatalf("weight for %q = %s, want %s", role, weight, wantWeights[index])
		}
	}

	if _, ok := RoleWeight("astronaut"); ok {
		t.Fatal("unknown role has a weight")
	}
}
