// Package seed loads the demo dataset the dashboard starts with. Everything
// here is process-local fixture data; it resets on every start.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// Repositories collects everything Load populates
type Repositories struct {
	Menu        repositories.MenuRepository
	Tables      repositories.TableRepository
	Inventory   repositories.InventoryRepository
	Staff       repositories.StaffRepository
	Credentials repositories.CredentialRepository
}

// Load inserts the demo menu, floor plan, inventory, roster and sign-in
// credentials
func Load(repos Repositories) error {
	if err := loadMenu(repos.Menu); err != nil {
		return err
	}
	if err := loadTables(repos.Tables); err != nil {
		return err
	}
	if err := loadInventory(repos.Inventory); err != nil {
		return err
	}
	if err := loadStaff(repos.Staff); err != nil {
		return err
	}
	return loadCredentials(repos.Credentials)
}

func loadMenu(repo repositories.MenuRepository) error {
	fixtures := []struct {
		name     string
		category entities.MenuCategory
		price    string
		prepMin  int
		tags     []string
	}{
		{"Espresso", entities.CategoryCoffee, "120", 3, []string{"Popular"}},
		{"Cappuccino", entities.CategoryCoffee, "160", 5, []string{"Popular"}},
		{"Cold Brew", entities.CategoryCoffee, "180", 4, nil},
		{"Masala Chai", entities.CategoryTea, "90", 4, []string{"Popular"}},
		{"Green Tea", entities.CategoryTea, "100", 3, []string{"Organic"}},
		{"Butter Croissant", entities.CategoryBakery, "140", 2, nil},
		{"Blueberry Muffin", entities.CategoryBakery, "150", 2, []string{"New"}},
		{"Grilled Cheese", entities.CategorySandwiches, "220", 8, []string{"Veg"}},
		{"Club Sandwich", entities.CategorySandwiches, "260", 10, nil},
		{"Affogato Special", entities.CategorySpecials, "240", 6, []string{"New"}},
	}

	for _, f := range fixtures {
		price, err := decimal.NewFromString(f.price)
		if err != nil {
			return fmt.Errorf("bad seed price for %s: %w", f.name, err)
		}
		item, err := entities.NewMenuItem(f.name, f.category, price, f.prepMin)
		if err != nil {
			return fmt.Errorf("bad seed menu item %s: %w", f.name, err)
		}
		item.Tags = f.tags
		if _, err := repo.Insert(item); err != nil {
			return fmt.Errorf("failed to seed menu item %s: %w", f.name, err)
		}
	}
	return nil
}

func loadTables(repo repositories.TableRepository) error {
	capacities := []int{2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 8, 8, 2, 4}
	for i, capacity := range capacities {
		table, err := entities.NewTable(i+1, capacity)
		if err != nil {
			return fmt.Errorf("bad seed table %d: %w", i+1, err)
		}
		if _, err := repo.Insert(table); err != nil {
			return fmt.Errorf("failed to seed table %d: %w", i+1, err)
		}
	}
	return nil
}

func loadInventory(repo repositories.InventoryRepository) error {
	fixtures := []struct {
		name     string
		stock    float64
		unit     string
		reorder  float64
		supplier string
	}{
		{"Coffee Beans", 25, "kg", 10, "Roastery Co"},
		{"Whole Milk", 18, "L", 20, "Dairy Farm"},
		{"Sugar", 12, "kg", 8, "Sweet Supplies"},
		{"Tea Leaves", 4, "kg", 5, "Hill Estate"},
		{"Flour", 30, "kg", 15, "Mill Works"},
		{"Butter", 6, "kg", 6, "Dairy Farm"},
		{"Bread Loaves", 14, "pcs", 10, "Local Bakery"},
		{"Cheese", 2, "kg", 5, "Dairy Farm"},
	}

	for _, f := range fixtures {
		item, err := entities.NewInventoryItem(f.name, f.stock, f.unit, f.reorder, f.supplier)
		if err != nil {
			return fmt.Errorf("bad seed inventory item %s: %w", f.name, err)
		}
		if _, err := repo.Insert(item); err != nil {
			return fmt.Errorf("failed to seed inventory item %s: %w", f.name, err)
		}
	}
	return nil
}

func loadStaff(repo repositories.StaffRepository) error {
	hire := time.Date(2023, 4, 10, 0, 0, 0, 0, time.Local)
	fixtures := []struct {
		name  string
		role  entities.Role
		email string
		shift entities.Shift
	}{
		{"John Manager", entities.RoleManager, "manager@cafe.com", entities.ShiftMorning},
		{"Sarah Cashier", entities.RoleCashier, "cashier@cafe.com", entities.ShiftAfternoon},
		{"Mike Staff", entities.RoleStaff, "staff@cafe.com", entities.ShiftEvening},
		{"Priya Barista", entities.RoleStaff, "priya@cafe.com", entities.ShiftMorning},
	}

	for i, f := range fixtures {
		member, err := entities.NewStaff(f.name, f.role, f.email, fmt.Sprintf("+91 90000 000%02d", i), f.shift, hire.AddDate(0, i, 0))
		if err != nil {
			return fmt.Errorf("bad seed staff member %s: %w", f.name, err)
		}
		if _, err := repo.Insert(member); err != nil {
			return fmt.Errorf("failed to seed staff member %s: %w", f.name, err)
		}
	}
	return nil
}

func loadCredentials(repo repositories.CredentialRepository) error {
	fixtures := []struct {
		email    string
		password string
		name     string
		role     entities.Role
	}{
		{"manager@cafe.com", "manager123", "John Manager", entities.RoleManager},
		{"cashier@cafe.com", "cashier123", "Sarah Cashier", entities.RoleCashier},
		{"staff@cafe.com", "staff123", "Mike Staff", entities.RoleStaff},
	}

	for i, f := range fixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", f.email, err)
		}
		cred := &repositories.Credential{
			User: entities.User{
				ID:    fmt.Sprintf("user-%d", i+1),
				Email: f.email,
				Name:  f.name,
				Role:  f.role,
			},
			PasswordHash: hash,
		}
		if err := repo.Insert(cred); err != nil {
			return fmt.Errorf("failed to seed credential for %s: %w", f.email, err)
		}
	}
	return nil
}
