package identity

import "testing"

func TestPolicyTableMatchesRoleMatrix(t *testing.T) {
	cases := []struct {
		role    Role
		action  Action
		allowed bool
	}{
		{RoleAdmin, ActionInventoryRead, true},
		{RoleAdmin, ActionInventoryWrite, true},
		{RoleAdmin, ActionInventoryCreate, true},
		{RoleAdmin, ActionOrderList, true},
		{RoleAdmin, ActionOrderPlace, false},
		{RoleAdmin, ActionFeedbackList, true},
		{RoleAdmin, ActionFeedbackCreate, false},
		{RoleAdmin, ActionReportView, true},
		{RoleAdmin, ActionNotificationReview, true},
		{RoleAdmin, ActionNotificationReport, false},
		{RoleAdmin, ActionUserManage, true},
		{RoleAdmin, ActionUnitManage, true},

		{RoleEmployee, ActionInventoryRead, true},
		{RoleEmployee, ActionInventoryWrite, true},
		{RoleEmployee, ActionInventoryCreate, false},
		{RoleEmployee, ActionOrderList, true},
		{RoleEmployee, ActionOrderPlace, false},
		{RoleEmployee, ActionFeedbackList, true},
		{RoleEmployee, ActionFeedbackCreate, false},
		{RoleEmployee, ActionReportView, true},
		{RoleEmployee, ActionNotificationReport, true},
		{RoleEmployee, ActionNotificationReview, false},
		{RoleEmployee, ActionUserManage, false},
		{RoleEmployee, ActionUnitManage, false},

		{RoleCustomer, ActionOrderPlace, true},
		{RoleCustomer, ActionFeedbackCreate, true},
		{RoleCustomer, ActionInventoryRead, false},
		{RoleCustomer, ActionInventoryWrite, false},
		{RoleCustomer, ActionOrderList, false},
		{RoleCustomer, ActionFeedbackList, false},
		{RoleCustomer, ActionReportView, false},
		{RoleCustomer, ActionNotificationReport, false},
	}

	for _, tc := range cases {
		if got := Allows(tc.role, tc.action); got != tc.allowed {
			t.Errorf("Allows(%s, %s) = %v, want %v", tc.role, tc.action, got, tc.allowed)
		}
	}
}

func TestAllowsDeniesUnknownRole(t *testing.T) {
	if Allows(Role("auditor"), ActionInventoryRead) {
		t.Fatal("unknown role must be denied")
	}
}

func TestMayAccessUnit(t *testing.T) {
	unit7 := 7

	admin := Actor{UserID: 1, Role: RoleAdmin}
	if !admin.MayAccessUnit(7) || !admin.MayAccessUnit(9) {
		t.Fatal("admin must reach any unit")
	}

	employee := Actor{UserID: 2, Role: RoleEmployee, UnitID: &unit7}
	if !employee.MayAccessUnit(7) {
		t.Fatal("employee must reach own unit")
	}
	if employee.MayAccessUnit(9) {
		t.Fatal("employee must not reach another unit")
	}

	unassigned := Actor{UserID: 3, Role: RoleEmployee}
	if unassigned.MayAccessUnit(7) {
		t.Fatal("employee without assignment must not reach any unit")
	}

	customer := Actor{UserID: 4, Role: RoleCustomer, UnitID: &unit7}
	if customer.MayAccessUnit(7) {
		t.Fatal("customer unit assignment is not used for scoping")
	}
}
