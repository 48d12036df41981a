package services

import (
	"errors"
	"testing"

	"gorm.io/datatypes"
)

func TestBlueprintCreateIsProfileOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlueprintService(db)
	tp := seedTempop(t, db, "APP-0001")

	_, err := svc.Create(tempopIdentity(tp), &BlueprintCreate{Name: "reactor"})
	if !errors.Is(err, ErrProfileOnly) {
		t.Fatalf("err = %v, want ErrProfileOnly", err)
	}
}

func TestBlueprintDefaultsAndOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlueprintService(db)
	p := seedProfile(t, db, "OP-0001", "operator")

	bp, err := svc.Create(profileIdentity(p), &BlueprintCreate{
		Name: "reactor",
		Data: datatypes.JSON([]byte(`{"cells":4}`)),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if bp.Version != "v1.0" {
		t.Errorf("version = %q, want default v1.0", bp.Version)
	}
	if bp.CreatedBy == nil || *bp.CreatedBy != p.ID {
		t.Errorf("creator = %v, want %s", bp.CreatedBy, p.ID)
	}
}

func TestBlueprintVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlueprintService(db)

	owner := seedProfile(t, db, "OP-0001", "operator")
	other := seedProfile(t, db, "OP-0002", "operator")
	tp := seedTempop(t, db, "APP-0001")

	private, _ := svc.Create(profileIdentity(owner), &BlueprintCreate{Name: "private"})
	svc.Create(profileIdentity(owner), &BlueprintCreate{Name: "public", IsPublic: true})

	mine, err := svc.List(profileIdentity(owner))
	if err != nil {
		t.Fatalf("List owner: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("owner sees %d, want 2", len(mine))
	}

	theirs, _ := svc.List(profileIdentity(other))
	if len(theirs) != 1 || theirs[0].Name != "public" {
		t.Errorf("other profile sees %+v, want only the public one", theirs)
	}

	guest, _ := svc.List(tempopIdentity(tp))
	if len(guest) != 1 {
		t.Errorf("tempop sees %d, want 1", len(guest))
	}

	if _, err := svc.Get(profileIdentity(other), private.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("private read by stranger: err = %v, want ErrPermissionDenied", err)
	}
}

func TestBlueprintUpdateAndDeleteAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlueprintService(db)

	owner := seedProfile(t, db, "OP-0001", "operator")
	other := seedProfile(t, db, "OP-0002", "operator")
	admin := seedProfile(t, db, "OP-0000", "admin")

	bp, _ := svc.Create(profileIdentity(owner), &BlueprintCreate{Name: "reactor", IsPublic: true})

	if _, err := svc.Update(profileIdentity(other), bp.ID, &BlueprintUpdate{Name: strPtr("stolen")}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("stranger update: err = %v, want ErrPermissionDenied", err)
	}

	updated, err := svc.Update(profileIdentity(owner), bp.ID, &BlueprintUpdate{Version: strPtr("v2.0")})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Version != "v2.0" || updated.Name != "reactor" {
		t.Errorf("partial update wrong: %+v", updated)
	}

	if err := svc.Delete(profileIdentity(admin), bp.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := svc.Delete(profileIdentity(owner), bp.ID); !errors.Is(err, ErrBlueprintNotFound) {
		t.Errorf("double delete: err = %v, want ErrBlueprintNotFound", err)
	}
}
