// Package sampledata holds the bootstrap ad inventory and the category
// vocabulary. The inventory is process-lifetime: loaded once at startup,
// never refreshed.
package sampledata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ad is one bootstrap inventory entry.
type Ad struct {
	Content  string            `yaml:"content"`
	Metadata map[string]string `yaml:"metadata"`
}

// LoadAds reads an ad list from a YAML file. Used when the config points
// at a custom inventory; otherwise Ads() supplies the built-in table.
func LoadAds(path string) ([]Ad, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ads file: %w", err)
	}
	var ads []Ad
	if err := yaml.Unmarshal(data, &ads); err != nil {
		return nil, fmt.Errorf("parse ads file: %w", err)
	}
	if len(ads) == 0 {
		return nil, fmt.Errorf("ads file %s contains no ads", path)
	}
	return ads, nil
}

// Ads returns the built-in demo inventory.
func Ads() []Ad {
	return []Ad{
		{
			Content:  "Get 50% off on the latest tech gadgets and smartphones! New models with AI features.",
			Metadata: map[string]string{"category": "technology", "target_audience": "tech-savvy"},
		},
		{
			Content:  "Smart home devices to automate your daily routines. Control everything from your phone!",
			Metadata: map[string]string{"category": "technology", "target_audience": "homeowners"},
		},
		{
			Content:  "Ultra-thin laptops with 20-hour battery life. Perfect for professionals on the go.",
			Metadata: map[string]string{"category": "technology", "target_audience": "professionals"},
		},
		{
			Content:  "Gaming PCs built for maximum performance. Experience games like never before!",
			Metadata: map[string]string{"category": "technology", "target_audience": "gamers"},
		},
		{
			Content:  "Noise-cancelling headphones for immersive audio experience. Work or relax in peace.",
			Metadata: map[string]string{"category": "technology", "target_audience": "commuters"},
		},
		{
			Content:  "Healthy organic food delivery service. First week free! Fresh ingredients delivered to your door.",
			Metadata: map[string]string{"category": "health", "target_audience": "health-conscious"},
		},
		{
			Content:  "New fitness app with personalized workout plans and nutrition advice. Stay fit and healthy!",
			Metadata: map[string]string{"category": "health", "target_audience": "fitness-enthusiasts"},
		},
		{
			Content:  "Premium vitamin supplements formulated by doctors. Support your immune system naturally.",
			Metadata: map[string]string{"category": "health", "target_audience": "wellness-focused"},
		},
		{
			Content:  "Online courses on data science and machine learning at discounted prices. Learn at your own pace.",
			Metadata: map[string]string{"category": "education", "target_audience": "learners"},
		},
		{
			Content:  "Master a new language in 3 months with daily 15-minute lessons. Try the first month free.",
			Metadata: map[string]string{"category": "education", "target_audience": "language-learners"},
		},
		{
			Content:  "Travel packages to exotic destinations. Book now and save! All-inclusive resorts available.",
			Metadata: map[string]string{"category": "travel", "target_audience": "travelers"},
		},
		{
			Content:  "Weekend city breaks across Europe from $199. Flights and hotel included.",
			Metadata: map[string]string{"category": "travel", "target_audience": "city-explorers"},
		},
		{
			Content:  "Sustainable fashion made from recycled materials. Look good, feel good about it.",
			Metadata: map[string]string{"category": "fashion", "target_audience": "eco-conscious"},
		},
		{
			Content:  "Designer handbags at outlet prices. Authentic brands, up to 60% off retail.",
			Metadata: map[string]string{"category": "fashion", "target_audience": "bargain-hunters"},
		},
		{
			Content:  "Open a high-yield savings account today. No fees, no minimum balance, 4.5% APY.",
			Metadata: map[string]string{"category": "finance", "target_audience": "savers"},
		},
		{
			Content:  "Investment app for beginners. Start building your portfolio with as little as $5.",
			Metadata: map[string]string{"category": "finance", "target_audience": "new-investors"},
		},
		{
			Content:  "Artisan coffee subscription. Freshly roasted beans from around the world, delivered monthly.",
			Metadata: map[string]string{"category": "food", "target_audience": "coffee-lovers"},
		},
		{
			Content:  "Meal kits with chef-designed recipes. Dinner for four ready in 30 minutes.",
			Metadata: map[string]string{"category": "food", "target_audience": "busy-families"},
		},
		{
			Content:  "Stream thousands of movies and shows. First month free, cancel anytime.",
			Metadata: map[string]string{"category": "entertainment", "target_audience": "streamers"},
		},
		{
			Content:  "Live concert tickets for this summer's biggest tours. Presale access for members.",
			Metadata: map[string]string{"category": "entertainment", "target_audience": "music-fans"},
		},
		{
			Content:  "Transform your garden with our landscaping service. Free consultation this month.",
			Metadata: map[string]string{"category": "home", "target_audience": "homeowners"},
		},
		{
			Content:  "Organic skincare products made with natural ingredients. Cruelty-free and vegan.",
			Metadata: map[string]string{"category": "beauty", "target_audience": "skincare-enthusiasts"},
		},
		{
			Content:  "Certified pre-owned cars with extended warranty. Financing available at 0% APR.",
			Metadata: map[string]string{"category": "automotive", "target_audience": "car-buyers"},
		},
		{
			Content:  "Premium pet food tailored to your dog's breed and age. Vet approved formulas.",
			Metadata: map[string]string{"category": "pets", "target_audience": "dog-owners"},
		},
		{
			Content:  "All-in-one accounting software for small business owners. Invoicing, payroll, and taxes.",
			Metadata: map[string]string{"category": "business", "target_audience": "small-business"},
		},
		{
			Content:  "Solar panels for your home. Cut your energy bills and help the environment.",
			Metadata: map[string]string{"category": "environment", "target_audience": "green-homeowners"},
		},
	}
}
