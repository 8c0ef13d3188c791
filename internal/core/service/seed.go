package service

import "github.com/mindreboot/mindreboot-api/internal/core/domain"

// SampleCatalog returns the demo catalog loaded by the seed endpoint.
// URLs are placeholders; the counters make the library look lived-in.
func SampleCatalog() []*domain.Audio {
	return []*domain.Audio{
		{
			Title:        "Deep Sleep Hypnosis",
			Description:  "A gentle and soothing hypnosis session designed to help you fall into a deep, restful sleep. Perfect for those struggling with insomnia or restless nights.",
			AudioURL:     "https://cdn.mindreboot.example/audio/deep-sleep.mp3",
			Duration:     1800,
			Format:       domain.FormatMP3,
			Category:     "sleep",
			Tags:         []string{"sleep", "relaxation", "insomnia", "bedtime"},
			ThumbnailURL: "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=400",
			Public:       true,
			UploadedBy:   "MindReboot Lab",
			PlayCount:    1247,
			Likes:        89,
		},
		{
			Title:        "Anxiety Relief & Calm",
			Description:  "Overcome anxiety and stress with this powerful hypnosis session. Learn to release tension and find your inner peace in just 25 minutes.",
			AudioURL:     "https://cdn.mindreboot.example/audio/anxiety-relief.mp3",
			Duration:     1500,
			Format:       domain.FormatMP3,
			Category:     "anxiety",
			Tags:         []string{"anxiety", "stress", "calm", "peace", "relaxation"},
			ThumbnailURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
			Public:       true,
			UploadedBy:   "MindReboot Lab",
			PlayCount:    2156,
			Likes:        134,
		},
		{
			Title:        "Confidence Boost",
			Description:  "Build unshakeable confidence and self-esteem with this empowering hypnosis session. Transform your self-talk and embrace your true potential.",
			AudioURL:     "https://cdn.mindreboot.example/audio/confidence-boost.mp3",
			Duration:     2100,
			Format:       domain.FormatMP3,
			Category:     "confidence",
			Tags:         []string{"confidence", "self-esteem", "empowerment", "success"},
			ThumbnailURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			Public:       true,
			UploadedBy:   "MindReboot Lab",
			PlayCount:    1834,
			Likes:        156,
		},
		{
			Title:        "Focus & Concentration",
			Description:  "Enhance your mental clarity and focus with this specialized hypnosis session. Perfect for students, professionals, and anyone looking to improve concentration.",
			AudioURL:     "https://cdn.mindreboot.example/audio/focus.mp3",
			Duration:     1200,
			Format:       domain.FormatMP3,
			Category:     "focus",
			Tags:         []string{"focus", "concentration", "productivity", "mental clarity"},
			ThumbnailURL: "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=400",
			Public:       true,
			UploadedBy:   "MindReboot Lab",
			PlayCount:    987,
			Likes:        67,
		},
		{
			Title:        "Stress Release",
			Description:  "Let go of daily stress and tension with this deeply relaxing hypnosis session. Feel refreshed, renewed, and ready to face any challenge.",
			AudioURL:     "https://cdn.mindreboot.example/audio/stress-release.mp3",
			Duration:     1800,
			Format:       domain.FormatMP3,
			Category:     "stress",
			Tags:         []string{"stress", "tension", "relaxation", "renewal"},
			ThumbnailURL: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			Public:       true,
			UploadedBy:   "MindReboot Lab",
			PlayCount:    1623,
			Likes:        112,
		},
		{
			Title:        "Phobia Freedom",
			Description:  "Break free from limiting fears and phobias with this targeted hypnosis session. Reclaim situations you have been avoiding.",
			AudioURL:     "https://cdn.mindreboot.example/audio/phobia-freedom.mp3",
			Duration:     2400,
			Format:       domain.FormatMP3,
			Category:     "phobias",
			Tags:         []string{"phobias", "fear", "freedom", "courage"},
			ThumbnailURL: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=400",
			Public:       true,
			UploadedBy:   "MindReboot Lab",
			PlayCount:    654,
			Likes:        48,
		},
	}
}
