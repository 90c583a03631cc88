package portfolio

func sampleCategories() []Category {
	return []Category{
		{
			ID:          "ev-systems",
			Name:        "EV Systems",
			Description: "Electric vehicle powertrains",
			Projects: []Project{
				{
					ID:          "bms",
					Title:       "Battery Management System",
					Description: "Cell balancing for a 96S pack",
					Tags:        []string{"battery", "embedded"},
					Skills:      []string{"C", "PCB Design", "STM32"},
					IsAward:     true,
				},
				{
					ID:          "motor-controller",
					Title:       "Motor Controller",
					Description: "Field oriented control inverter",
					Tags:        []string{"power", "foc"},
					Skills:      []string{"C", "Power Electronics"},
				},
			},
		},
		{
			ID:          "robotics",
			Name:        "Robotics",
			Description: "Autonomous machines",
			Projects: []Project{
				{
					ID:          "rover",
					Title:       "Mars Rover",
					Description: "Six wheel rocker bogie platform",
					Tags:        []string{"ROS", "autonomy"},
					Skills:      []string{"Python", "ROS", "C"},
					GitHubURL:   "https://github.com/example/rover",
				},
			},
		},
		{
			ID:          "theoretical",
			Name:        "Theoretical",
			Description: "Papers and simulations",
			Projects: []Project{
				{
					ID:          "sim",
					Title:       "Thermal Simulation",
					Description: "Finite element model of a cooling plate",
					Tags:        []string{"cfd"},
					Skills:      []string{"MATLAB"},
					LiveURL:     "https://example.com/sim",
				},
			},
		},
	}
}
