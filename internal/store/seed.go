package store

import "eventPortal/internal/models"

// seedEvents and seedHalls are the fixed dataset the portal starts from when
// no persisted state exists, and the state Reset restores.
func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:              "1",
			Title:           "PACE Tech Fest 2024",
			Description:     "The annual technical symposium of P.A. College of Engineering featuring hackathons, coding contests, and robotics.",
			ClubName:        "IEEE Student Branch",
			ClubID:          "club_ieee",
			Date:            "2024-05-15",
			Time:            "09:00",
			Location:        "PACE Auditorium",
			Category:        "Technology",
			ImageURL:        "https://picsum.photos/seed/pacetech/800/600",
			Capacity:        500,
			RegisteredCount: 350,
			Status:          models.StatusApproved,
		},
		{
			ID:              "2",
			Title:           "Linux Install Fest",
			Description:     "Learn how to install and configure various Linux distributions. Bring your laptops!",
			ClubName:        "GLUG PACE",
			ClubID:          "club_glug",
			Date:            "2024-06-20",
			Time:            "17:30",
			Location:        "CS Seminar Hall",
			Category:        "Workshop",
			ImageURL:        "https://picsum.photos/seed/linux/800/600",
			Capacity:        100,
			RegisteredCount: 72,
			Status:          models.StatusApproved,
		},
		{
			ID:              "3",
			Title:           "Embedded Systems Workshop",
			Description:     "Hands-on workshop on Arduino and Raspberry Pi for beginners.",
			ClubName:        "Embed Club",
			ClubID:          "club_embed",
			Date:            "2024-04-10",
			Time:            "14:00",
			Location:        "Electronics Lab",
			Category:        "Technology",
			ImageURL:        "https://picsum.photos/seed/arduino/800/600",
			Capacity:        60,
			RegisteredCount: 45,
			Status:          models.StatusPending,
		},
		{
			ID:              "4",
			Title:           "Ethnic Day Celebration",
			Description:     "A day to celebrate our rich cultural heritage. Come dressed in your traditional best! Features dance, music, and fashion show.",
			ClubName:        "PACE Cultural Club",
			ClubID:          "club_cultural",
			Date:            "2024-05-01",
			Time:            "10:00",
			Location:        "PACE Ground",
			Category:        "Cultural",
			ImageURL:        "https://picsum.photos/seed/ethnic/800/600",
			Capacity:        2000,
			RegisteredCount: 1200,
			Status:          models.StatusApproved,
		},
		{
			ID:              "5",
			Title:           "Inter-Department Cricket Tournament",
			Description:     "The battle for the PACE Cup begins! Register your department teams now.",
			ClubName:        "PACE Sports Association",
			ClubID:          "club_sports",
			Date:            "2024-04-25",
			Time:            "09:00",
			Location:        "College Ground",
			Category:        "Sports",
			ImageURL:        "https://picsum.photos/seed/cricket/800/600",
			Capacity:        200,
			RegisteredCount: 150,
			Status:          models.StatusApproved,
		},
		{
			ID:              "6",
			Title:           "Mega Blood Donation Camp",
			Description:     "Join hands to save lives. Organized in association with Red Cross Society.",
			ClubName:        "NSS Unit",
			ClubID:          "club_nss",
			Date:            "2024-04-15",
			Time:            "09:30",
			Location:        "Main Block Lobby",
			Category:        "Social Service",
			ImageURL:        "https://picsum.photos/seed/blood/800/600",
			Capacity:        500,
			RegisteredCount: 120,
			Status:          models.StatusApproved,
		},
	}
}

func seedHalls() []models.Hall {
	return []models.Hall{
		{ID: "h1", Name: "PACE Main Auditorium", Capacity: 1200, Facilities: []string{"Projector", "Dolby Sound", "Central AC"}},
		{ID: "h2", Name: "CS Seminar Hall", Capacity: 150, Facilities: []string{"Smart Board", "AC", "Video Conf"}},
		{ID: "h3", Name: "Mechanical Block AV Room", Capacity: 100, Facilities: []string{"Projector", "Whiteboard"}},
		{ID: "h4", Name: "Admin Conference Hall", Capacity: 50, Facilities: []string{"TV Screen", "Round Table"}},
		{ID: "h5", Name: "College Ground", Capacity: 5000, Facilities: []string{"PA System", "Stage"}},
	}
}
