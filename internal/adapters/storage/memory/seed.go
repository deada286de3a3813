package memory

import (
	"context"
	"time"

	"pet-adoption-api/internal/domain/admins"
	"pet-adoption-api/internal/domain/owners"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/products"
	"pet-adoption-api/internal/domain/reports"

	"golang.org/x/crypto/bcrypt"
)

// Seed carga datos de muestra en los repos in-memory (modo dev/demo).
// Credenciales seed: admin/password123 y sarah@example.com/password123.
func Seed(
	ctx context.Context,
	petRepo pets.Repository,
	ownerRepo owners.Repository,
	reportRepo reports.Repository,
	adminRepo admins.Repository,
	productRepo products.Repository,
) error {
	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	sarah, err := ownerRepo.Create(ctx, owners.Owner{
		Name:         "Sarah Johnson",
		Email:        "sarah@example.com",
		Type:         owners.TypeFoster,
		Bio:          "I love fostering pets and helping them find their forever homes. Currently have 2 dogs and 1 cat available for adoption.",
		AvatarURL:    "https://randomuser.me/api/portraits/women/62.jpg",
		PasswordHash: string(hash),
		IsApproved:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	mark, err := ownerRepo.Create(ctx, owners.Owner{
		Name:       "Mark Wilson",
		Email:      "mark@example.com",
		Type:       owners.TypeRescuer,
		Bio:        "Rescuing animals is my passion. I specialize in rehabilitating cats and preparing them for their new families.",
		AvatarURL:  "https://randomuser.me/api/portraits/men/42.jpg",
		IsApproved: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return err
	}

	jessica, err := ownerRepo.Create(ctx, owners.Owner{
		Name:       "Jessica Chen",
		Email:      "jessica@example.com",
		Type:       owners.TypeOwner,
		Bio:        "Animal lover with a passion for dogs. I train and care for dogs of all breeds and help them find loving homes.",
		AvatarURL:  "https://randomuser.me/api/portraits/women/32.jpg",
		IsApproved: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return err
	}

	// Un owner pendiente para probar la cola de aprobación.
	if _, err := ownerRepo.Create(ctx, owners.Owner{
		Name:       "Michael Brown",
		Email:      "michael@example.com",
		Type:       owners.TypeOwner,
		Bio:        "New to pet adoption, looking to add a furry friend to my family. Interested in small dogs.",
		AvatarURL:  "https://randomuser.me/api/portraits/men/55.jpg",
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}); err != nil {
		return err
	}

	seedPets := []pets.Pet{
		{
			Name: "Max", Type: pets.TypeDog, Breed: "Golden Retriever", Age: 2,
			Gender: pets.GenderMale, Size: pets.SizeLarge,
			Description: "Friendly and energetic companion looking for an active family.",
			ImageURL:    "https://images.unsplash.com/photo-1543466835-00a7907e9de1",
			Status:      pets.StatusAvailable, IsAdoptable: true,
			OwnerID: sarah.ID, OwnerName: sarah.Name, OwnerAvatarURL: sarah.AvatarURL,
			Likes: 120, IsRecent: true,
		},
		{
			Name: "Luna", Type: pets.TypeCat, Breed: "Domestic Shorthair", Age: 1,
			Gender: pets.GenderFemale, Size: pets.SizeSmall,
			Description: "Playful and affectionate, loves to curl up on laps.",
			ImageURL:    "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba",
			Status:      pets.StatusAvailable, IsAdoptable: true,
			OwnerID: mark.ID, OwnerName: mark.Name, OwnerAvatarURL: mark.AvatarURL,
			Likes: 87, IsFeatured: true,
		},
		{
			Name: "Buddy", Type: pets.TypeDog, Breed: "Border Collie", Age: 3,
			Gender: pets.GenderMale, Size: pets.SizeMedium,
			Description: "Intelligent and loyal, great with children and other pets.",
			ImageURL:    "https://images.unsplash.com/photo-1583511655826-05700442b31b",
			Status:      pets.StatusAvailable, IsAdoptable: true,
			OwnerID: jessica.ID, OwnerName: jessica.Name, OwnerAvatarURL: jessica.AvatarURL,
			Likes: 145, IsRecent: true, IsFeatured: true,
		},
		{
			Name: "Charlie", Type: pets.TypeDog, Breed: "Pug", Age: 4,
			Gender: pets.GenderMale, Size: pets.SizeSmall,
			Description: "Adorable and cuddly pug with tons of personality.",
			ImageURL:    "https://images.unsplash.com/photo-1517849845537-4d257902454a",
			Status:      pets.StatusNotForAdoption, IsAdoptable: false,
			OwnerID: sarah.ID, OwnerName: "Emma", OwnerAvatarURL: "https://randomuser.me/api/portraits/women/22.jpg",
			Likes: 243, IsFeatured: true,
		},
		{
			Name: "Bella", Type: pets.TypeDog, Breed: "Labrador", Age: 2,
			Gender: pets.GenderFemale, Size: pets.SizeLarge,
			Description: "Beautiful and gentle lab that loves to play fetch.",
			ImageURL:    "https://images.unsplash.com/photo-1552053831-71594a27632d",
			Status:      pets.StatusNotForAdoption, IsAdoptable: false,
			OwnerID: mark.ID, OwnerName: "James", OwnerAvatarURL: "https://randomuser.me/api/portraits/men/32.jpg",
			Likes: 187, IsRecent: true,
		},
		{
			Name: "Rio", Type: pets.TypeBird, Breed: "Parrot", Age: 5,
			Gender: pets.GenderMale,
			Description: "Colorful parrot that can say over 50 words!",
			ImageURL:    "https://images.unsplash.com/photo-1577023311546-cdc07a8454d9",
			Status:      pets.StatusNotForAdoption, IsAdoptable: false,
			OwnerID: jessica.ID, OwnerName: "Linda", OwnerAvatarURL: "https://randomuser.me/api/portraits/women/45.jpg",
			Likes: 156,
		},
		{
			Name: "Whiskers", Type: pets.TypeCat, Breed: "Maine Coon", Age: 3,
			Gender: pets.GenderMale, Size: pets.SizeMedium,
			Description: "Majestic Maine Coon with a stunning coat and friendly personality.",
			ImageURL:    "https://images.unsplash.com/photo-1548767797-d8c844163c4c",
			Status:      pets.StatusNotForAdoption, IsAdoptable: false,
			OwnerID: mark.ID, OwnerName: "Michael", OwnerAvatarURL: "https://randomuser.me/api/portraits/men/67.jpg",
			Likes: 219, IsRecent: true, IsFeatured: true,
		},
		{
			Name: "Oreo", Type: pets.TypeSmall, Breed: "Guinea Pig", Age: 1,
			Gender: pets.GenderFemale,
			Description: "Cute guinea pig with black and white markings like an Oreo cookie.",
			ImageURL:    "https://images.unsplash.com/photo-1535591273668-578e31182c4f",
			Status:      pets.StatusNotForAdoption, IsAdoptable: false,
			OwnerID: sarah.ID, OwnerName: "Sophie", OwnerAvatarURL: "https://randomuser.me/api/portraits/women/12.jpg",
			Likes: 142,
		},
		{
			Name: "Thumper", Type: pets.TypeSmall, Breed: "Rabbit", Age: 1,
			Gender: pets.GenderMale,
			Description: "Energetic rabbit who loves to hop around and eat carrots.",
			ImageURL:    "https://images.unsplash.com/photo-1596272875729-ed2ff7d6d9c5",
			Status:      pets.StatusNotForAdoption, IsAdoptable: false,
			OwnerID: jessica.ID, OwnerName: "David", OwnerAvatarURL: "https://randomuser.me/api/portraits/men/22.jpg",
			Likes: 98, IsRecent: true,
		},
	}
	for _, p := range seedPets {
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := petRepo.Create(ctx, p); err != nil {
			return err
		}
	}

	contact := "john@example.com"
	notes := "Assigned to animal control for investigation."
	seedReports := []reports.Report{
		{
			Type:        "Neglect",
			Location:    "123 Main St, Anytown",
			Description: "Dog left outside in extreme heat without water or shelter.",
			ContactInfo: &contact,
			Status:      reports.StatusSubmitted,
		},
		{
			Type:        "Abuse",
			Location:    "456 Park Ave, Cityville",
			Description: "Multiple cats in poor condition, appear to be malnourished.",
			Anonymous:   true,
			Status:      reports.StatusInvestigating,
			AdminNotes:  &notes,
		},
	}
	for _, rep := range seedReports {
		rep.CreatedAt = now
		rep.UpdatedAt = now
		if _, err := reportRepo.Create(ctx, rep); err != nil {
			return err
		}
	}

	if _, err := adminRepo.Create(ctx, admins.Admin{
		Username:     "admin",
		Name:         "Admin User",
		Email:        "admin@petshop.com",
		Role:         admins.RoleAdmin,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}

	seedProducts := []products.Product{
		{
			Name:        "Premium Dog Food",
			Description: "High-quality dog food with balanced nutrition for adult dogs.",
			Category:    "food", PetType: "dog", Price: "29.99",
			ImageURL: "https://images.unsplash.com/photo-1589924691995-400dc9ecc119",
			Stock:    50, IsAvailable: true,
		},
		{
			Name:        "Interactive Cat Toy",
			Description: "Automatic laser toy to keep your cat entertained for hours.",
			Category:    "toys", PetType: "cat", Price: "19.99",
			ImageURL: "https://images.unsplash.com/photo-1526336024174-e58f5cdd8e13",
			Stock:    30, IsAvailable: true,
		},
		{
			Name:        "Pet Carrier",
			Description: "Comfortable and secure carrier for small to medium pets.",
			Category:    "accessories", PetType: "small", Price: "34.99",
			ImageURL: "https://images.unsplash.com/photo-1597843797221-e34b4ff3b3d8",
			Stock:    15, IsAvailable: true,
		},
	}
	for _, p := range seedProducts {
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := productRepo.Create(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
